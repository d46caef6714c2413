package validate

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/qri-io/jsonschema"
)

//go:embed employee_schema.json
var employeeSchemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func employeeSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(employeeSchemaJSON, rs); err != nil {
			schemaErr = fmt.Errorf("compile employee schema: %w", err)
			return
		}
		schema = rs
	})
	return schema, schemaErr
}

// Payload checks that body is a JSON object of the right shape: every
// employee attribute present with the expected JSON type. Field-level rules
// are applied separately by Employee.
func Payload(ctx context.Context, body []byte) error {
	rs, err := employeeSchema()
	if err != nil {
		return err
	}

	verrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return fmt.Errorf("schema validate error: %w", err)
	}
	if len(verrs) > 0 {
		var sb strings.Builder
		for _, v := range verrs {
			sb.WriteString(v.Message)
			sb.WriteString("; ")
		}
		return fmt.Errorf("payload does not match schema: %s", sb.String())
	}

	return nil
}
