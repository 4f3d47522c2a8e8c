package card

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{"nil", nil, "", false},
		{"empty string", "", "", false},
		{"string", "Active", "Active", true},
		{"url", "https://example.com/a.png", "https://example.com/a.png", true},
		{"integral float", 42.0, "42", true},
		{"fraction", 3.25, "3.25", true},
		{"int", 7, "7", true},
		{"json number", json.Number("199.99"), "199.99", true},
		{"bool", true, "true", true},
		{"date", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "2024-01-15", true},
		{"timestamp", time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), "2024-01-15T09:30:00Z", true},
		{"list", []any{"a", "b"}, `["a","b"]`, true},
		{"map", map[string]any{"k": 1}, `{"k":1}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DisplayValue(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DisplayValue(%v) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
