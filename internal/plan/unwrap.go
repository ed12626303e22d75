package plan

import (
	"regexp"
	"strings"
)

// fenceLine matches a Markdown code fence on its own line, with an optional
// language tag (```json, ```JSON, ```).
var fenceLine = regexp.MustCompile("(?m)^[ \t]*```[A-Za-z0-9_+-]*[ \t]*\r?(?:\n|$)")

// inlineFenceOpen matches an opening fence glued to the payload on the same
// line, e.g. "```json{...".
var inlineFenceOpen = regexp.MustCompile("^```(?:[A-Za-z][A-Za-z0-9_+-]*)?\\s*")

// Unwrap strips Markdown code-fence markers and surrounding whitespace from a
// raw model response. Text without fences is returned trimmed and otherwise
// unchanged. No parsing happens here.
func Unwrap(raw string) string {
	s := strings.TrimSpace(raw)
	s = fenceLine.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = inlineFenceOpen.ReplaceAllString(s, "")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
