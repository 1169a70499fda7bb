package models

import (
	"encoding/json"
	"testing"
)

func TestRawAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    RawAmount
		wantErr bool
	}{
		{name: "string", body: `{"value":"10"}`, want: "10"},
		{name: "integer", body: `{"value":10}`, want: "10"},
		{name: "fraction", body: `{"value":12.5}`, want: "12.5"},
		{name: "free text", body: `{"value":"diez"}`, want: "diez"},
		{name: "null", body: `{"value":null}`, want: ""},
		{name: "missing", body: `{}`, want: ""},
		{name: "boolean", body: `{"value":true}`, wantErr: true},
		{name: "object", body: `{"value":{"n":1}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req DiscountRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got value %q", req.Value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Value != tt.want {
				t.Errorf("Value = %q, want %q", req.Value, tt.want)
			}
		})
	}
}
