package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := SplitText("hello world", 100, 20)
		if len(chunks) != 1 || chunks[0] != "hello world" {
			t.Fatalf("got %v", chunks)
		}
	})

	t.Run("chunks overlap and cover the whole text", func(t *testing.T) {
		text := strings.Repeat("abcdefghij", 50) // 500 chars
		chunks := SplitText(text, 100, 20)

		if len(chunks) < 5 {
			t.Fatalf("expected several chunks, got %d", len(chunks))
		}
		for i, c := range chunks {
			if len(c) > 100 {
				t.Errorf("chunk %d exceeds size: %d", i, len(c))
			}
		}
		// Step is chunkSize-overlap, so consecutive chunks share a suffix/prefix.
		if !strings.HasPrefix(chunks[1], chunks[0][80:]) {
			t.Error("expected 20-char overlap between consecutive chunks")
		}
		// Last chunk must end exactly where the text ends.
		last := chunks[len(chunks)-1]
		if !strings.HasSuffix(text, last) {
			t.Error("last chunk does not close the text")
		}
	})

	t.Run("overlap larger than chunk size does not loop forever", func(t *testing.T) {
		chunks := SplitText(strings.Repeat("x", 50), 10, 15)
		if len(chunks) != 5 {
			t.Fatalf("expected 5 chunks with fallback step, got %d", len(chunks))
		}
	})

	t.Run("multibyte runes are not split", func(t *testing.T) {
		text := strings.Repeat("日本語テキスト", 30)
		for _, c := range SplitText(text, 50, 10) {
			if !strings.Contains(text, c) {
				t.Errorf("chunk %q is not a clean substring", c)
			}
		}
	})
}
