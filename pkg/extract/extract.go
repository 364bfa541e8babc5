package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrUnsupported marks file types the extractor cannot read.
var ErrUnsupported = errors.New("unsupported file type")

// Text returns the plain text of an uploaded file. Plain-text formats are
// passed through; anything else is rejected so the caller can mark the
// document failed instead of indexing garbage.
func Text(filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md", ".markdown", ".csv", ".log":
		if !utf8.Valid(content) {
			return "", fmt.Errorf("file %s is not valid UTF-8", filename)
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}
