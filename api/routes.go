package api

import (
	"net/http"

	"employee-directory/internal/config"
	"employee-directory/internal/db"
	"employee-directory/internal/repository/sqlite"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) http.Handler {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	employeesHandler := NewEmployeesHandler(repo)

	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	r.HandleFunc("/employees", employeesHandler.List).Methods("GET")
	r.HandleFunc("/employees", employeesHandler.Create).Methods("POST")
	r.HandleFunc("/employees", employeesHandler.Update).Methods("PUT")
	r.HandleFunc("/employees", employeesHandler.Delete).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}
