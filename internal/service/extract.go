package service

import (
	"encoding/json"
	"strings"
)

const snippetLimit = 500

// ExtractJSON locates a JSON payload inside raw model output and parses it
// into a generic tree. Models sometimes wrap their output in markdown code
// fences despite being told not to, so the payload is taken from the first
// ```json fence if present, otherwise from the first generic ``` fence,
// otherwise the whole text is treated as JSON.
//
// The first-fence heuristic intentionally mirrors the documented behavior
// and is known to be fragile with multiple or nested fences.
func ExtractJSON(text string) (map[string]any, error) {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = sliceFence(text, idx+len("```json"))
	} else if idx := strings.Index(text, "```"); idx >= 0 {
		text = sliceFence(text, idx+len("```"))
	}

	text = strings.TrimSpace(text)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &ParseError{Msg: err.Error(), Snippet: truncate(text, snippetLimit)}
	}
	return parsed, nil
}

// sliceFence returns the text between the opening fence and the next fence
// marker, or everything after the opening fence when no closing marker
// exists.
func sliceFence(text string, start int) string {
	rest := text[start:]
	if end := strings.Index(rest, "```"); end >= 0 {
		return rest[:end]
	}
	return rest
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
