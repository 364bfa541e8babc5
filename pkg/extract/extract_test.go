package extract

import (
	"errors"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		content   []byte
		want      string
		wantErr   bool
		wantUnsup bool
	}{
		{"txt passthrough", "notes.txt", []byte("hello"), "hello", false, false},
		{"markdown passthrough", "README.MD", []byte("# title"), "# title", false, false},
		{"csv passthrough", "data.csv", []byte("a,b"), "a,b", false, false},
		{"pdf unsupported", "book.pdf", []byte("%PDF"), "", true, true},
		{"no extension unsupported", "binary", []byte{0x00}, "", true, true},
		{"invalid utf8 rejected", "bad.txt", []byte{0xff, 0xfe}, "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.filename, tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if tt.wantUnsup != errors.Is(err, ErrUnsupported) {
					t.Errorf("ErrUnsupported mismatch for %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
