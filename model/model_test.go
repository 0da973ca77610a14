package model

import (
	"encoding/json"
	"testing"
)

func TestTriggerPayload_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected TriggerPayload
	}{
		{
			name:     "all fields",
			body:     `{"message":"Disk full","severity":"CRITICAL","system":"Node-7","imageUrl":"https://example.com/a.png"}`,
			expected: TriggerPayload{Message: "Disk full", Severity: "CRITICAL", System: "Node-7", ImageURL: "https://example.com/a.png"},
		},
		{
			name:     "non-string fields are absent",
			body:     `{"message":42,"severity":true,"system":{"name":"db"},"imageUrl":["x"]}`,
			expected: TriggerPayload{},
		},
		{
			name:     "null field is absent",
			body:     `{"message":null,"system":"db"}`,
			expected: TriggerPayload{System: "db"},
		},
		{
			name:     "null body",
			body:     `null`,
			expected: TriggerPayload{},
		},
		{
			name:     "unknown fields ignored",
			body:     `{"host":"db-1","severity":"warning"}`,
			expected: TriggerPayload{Severity: "warning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TriggerPayload
			if err := json.Unmarshal([]byte(tt.body), &got); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestTriggerPayload_UnmarshalJSON_NotAnObject(t *testing.T) {
	for _, body := range []string{`[1,2,3]`, `"text"`, `42`} {
		var got TriggerPayload
		if err := json.Unmarshal([]byte(body), &got); err == nil {
			t.Errorf("Expected error for body %s", body)
		}
	}
}
