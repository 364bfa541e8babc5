package utils

import "strings"

// StripJSONFences removes markdown code fences that chat models wrap around
// JSON output despite being told not to.
func StripJSONFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
