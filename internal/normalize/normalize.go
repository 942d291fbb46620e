// Package normalize turns raw provider text into validated, typed JSON.
// Models wrap JSON in markdown fences and occasionally lead with prose;
// normalization strips both, parses, and checks the result against a
// declarative JSON Schema before any pipeline touches it.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ParseError is a fatal, non-retried failure to get JSON out of the raw
// text. Raw carries the original response for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError is a fatal schema violation in syntactically valid JSON.
type ShapeError struct {
	Issues []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("response shape invalid: %s", strings.Join(e.Issues, "; "))
}

// StripCodeFences removes a leading ```json or bare ``` fence and the
// matching trailing fence, if present.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

// ExtractJSONObject returns the first balanced {...} span in s. Used for
// replies that still carry leading prose after fence stripping.
func ExtractJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object found")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON object")
}

// Normalize strips fences, extracts the JSON object, parses it into out,
// and validates it against schema. Normalizing the same raw text twice
// yields structurally identical results.
func Normalize(raw string, schema *gojsonschema.Schema, out any) error {
	cleaned := StripCodeFences(raw)
	if !strings.HasPrefix(cleaned, "{") {
		extracted, err := ExtractJSONObject(cleaned)
		if err != nil {
			return &ParseError{Raw: raw, Err: err}
		}
		cleaned = extracted
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ParseError{Raw: raw, Err: err}
	}

	if schema == nil {
		return nil
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return &ParseError{Raw: raw, Err: err}
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, resErr := range result.Errors() {
			issues = append(issues, resErr.String())
		}
		return &ShapeError{Issues: issues}
	}
	return nil
}
