package llmoutput

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// Schema failure kinds. Every error returned by Validate is a *SchemaError
// wrapping exactly one of these.
var (
	ErrMalformedJSON   = errors.New("malformed json")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrCountOutOfRange = errors.New("suggestion count out of range")
	ErrElementInvalid  = errors.New("invalid suggestion element")
)

// SchemaError describes why a candidate was rejected.
type SchemaError struct {
	Err    error
	Index  int // failing element for ErrElementInvalid, otherwise -1
	Detail string
}

func (e *SchemaError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s at index %d: %s", e.Err, e.Index, e.Detail)
	}
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Detail)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func schemaErr(kind error, detail string) *SchemaError {
	return &SchemaError{Err: kind, Index: -1, Detail: detail}
}

var requiredFields = []string{"title", "reason", "action"}

// Validate parses candidate and returns its suggestions. A single invalid
// element rejects the whole candidate.
func Validate(candidate string) ([]domain.SuggestionItem, error) {
	var top any
	if err := json.Unmarshal([]byte(candidate), &top); err != nil {
		return nil, schemaErr(ErrMalformedJSON, err.Error())
	}

	obj, ok := top.(map[string]any)
	if !ok {
		return nil, schemaErr(ErrShapeMismatch, "top level is not an object")
	}
	rawList, ok := obj["suggestions"]
	if !ok {
		return nil, schemaErr(ErrShapeMismatch, `missing "suggestions" field`)
	}
	list, ok := rawList.([]any)
	if !ok {
		return nil, schemaErr(ErrShapeMismatch, `"suggestions" is not an array`)
	}

	if len(list) < domain.MinSuggestionItems || len(list) > domain.MaxSuggestionItems {
		return nil, schemaErr(ErrCountOutOfRange, fmt.Sprintf("got %d, want %d..%d",
			len(list), domain.MinSuggestionItems, domain.MaxSuggestionItems))
	}

	items := make([]domain.SuggestionItem, 0, len(list))
	for i, el := range list {
		fields, ok := el.(map[string]any)
		if !ok {
			return nil, &SchemaError{Err: ErrElementInvalid, Index: i, Detail: "not an object"}
		}

		values := make(map[string]string, len(requiredFields))
		for _, name := range requiredFields {
			v, present := fields[name]
			if !present {
				return nil, &SchemaError{Err: ErrElementInvalid, Index: i, Detail: fmt.Sprintf("missing %q", name)}
			}
			s, isString := v.(string)
			if !isString {
				return nil, &SchemaError{Err: ErrElementInvalid, Index: i, Detail: fmt.Sprintf("%q is not a string", name)}
			}
			s = strings.TrimSpace(s)
			if s == "" {
				return nil, &SchemaError{Err: ErrElementInvalid, Index: i, Detail: fmt.Sprintf("%q is empty", name)}
			}
			values[name] = s
		}

		items = append(items, domain.SuggestionItem{
			Title:  values["title"],
			Reason: values["reason"],
			Action: values["action"],
		})
	}

	return items, nil
}

// Parse runs Normalize and Validate in sequence.
func Parse(raw string) ([]domain.SuggestionItem, error) {
	candidate, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	return Validate(candidate)
}
