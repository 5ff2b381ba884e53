package utils

import (
	"encoding/json"
	"testing"
)

func TestDateOnlyRoundTrip(t *testing.T) {
	var d DateOnly
	if err := json.Unmarshal([]byte(`"2026-08-29"`), &d); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if d.Year() != 2026 || d.Month() != 8 || d.Day() != 29 {
		t.Errorf("parsed date = %v", d.Time)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}
	if string(out) != `"2026-08-29"` {
		t.Errorf("marshaled = %s, want \"2026-08-29\"", out)
	}
}

func TestDateOnlyRejectsTimestamps(t *testing.T) {
	var d DateOnly
	if err := json.Unmarshal([]byte(`"2026-08-29T10:00:00Z"`), &d); err == nil {
		t.Error("timestamp accepted, want error")
	}
	if err := json.Unmarshal([]byte(`20260829`), &d); err == nil {
		t.Error("bare number accepted, want error")
	}
}
