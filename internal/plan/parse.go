package plan

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Parse turns unwrapped model text into a Value tree. The whole text must be
// a single JSON value; anything else, including JSON surrounded by prose or
// several concatenated values, fails with ErrMalformedResponse.
func Parse(text string) (Value, error) {
	if !gjson.Valid(text) {
		return Value{}, fmt.Errorf("%w: %s", ErrMalformedResponse, snippet(text))
	}
	return Value{r: gjson.Parse(text)}, nil
}

func snippet(s string) string {
	const max = 80
	s = strings.TrimSpace(s)
	if s == "" {
		return "empty response"
	}
	if len(s) > max {
		return fmt.Sprintf("%q...", s[:max])
	}
	return fmt.Sprintf("%q", s)
}
