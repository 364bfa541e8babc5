package utils

import (
	"testing"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"leading whitespace", "  \n```json\n{}\n```  ", `{}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripJSONFences(tt.input); got != tt.want {
				t.Errorf("StripJSONFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
