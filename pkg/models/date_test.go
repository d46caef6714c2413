package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"employee-directory/pkg/models"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d, err := models.ParseDate("2023-01-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2023-01-15"` {
		t.Fatalf("unexpected JSON: %s", b)
	}

	var back models.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip changed the date: %s vs %s", back, d)
	}
}

func TestDate_UnmarshalTimestamp(t *testing.T) {
	// older clients send full timestamps; only the date part is kept
	var d models.Date
	if err := json.Unmarshal([]byte(`"2023-01-15T00:00:00.000Z"`), &d); err != nil {
		t.Fatalf("unmarshal timestamp: %v", err)
	}
	if d.String() != "2023-01-15" {
		t.Fatalf("unexpected date: %s", d)
	}
}

func TestDate_Scan(t *testing.T) {
	var d models.Date
	if err := d.Scan("2023-01-15"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2023-01-15" {
		t.Fatalf("unexpected date: %s", d)
	}

	v, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2023-01-15" {
		t.Fatalf("unexpected driver value: %v", v)
	}
}

func TestDate_AfterAndDateOf(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	today := models.DateOf(now)
	tomorrow := models.DateOf(now.AddDate(0, 0, 1))

	if !tomorrow.After(today) {
		t.Fatalf("expected tomorrow to be after today")
	}
	if today.After(today) {
		t.Fatalf("a date must not be after itself")
	}
}
