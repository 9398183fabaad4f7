// Package validate checks the presence and shape of request body fields before
// any storage access. Each route declares an ordered [Rules] table; every rule
// is evaluated so that all violations are reported at once.
package validate

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
)

// values checks single field values against validator tags.
var values = validator.New()

// Body is a decoded JSON object. Numbers decode as float64.
type Body map[string]any

// Decode reads a JSON object from r. Input that is not a JSON object decodes
// to an empty Body, which simply fails every presence rule.
func Decode(r io.Reader) Body {
	body := Body{}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body == nil {
		return Body{}
	}
	return body
}

// DecodeBytes is [Decode] over a byte slice.
func DecodeBytes(data []byte) Body {
	return Decode(bytes.NewReader(data))
}

// Predicate reports whether a field is acceptable. present is false when the
// field is absent from the body entirely.
type Predicate func(value any, present bool) bool

// Rule attaches a failure message to a predicate on a single field.
type Rule struct {
	Field     string
	Predicate Predicate
	Message   string
}

// Rules is an ordered rule table.
type Rules []Rule

// Validate evaluates every rule against body in declaration order and returns
// the messages of those that failed. An empty result means body is valid.
func (rules Rules) Validate(body Body) []string {
	var msgs []string
	for _, rule := range rules {
		value, present := body[rule.Field]
		if !rule.Predicate(value, present) {
			msgs = append(msgs, rule.Message)
		}
	}
	return msgs
}

// Present fails for missing, null, and falsy values: false, zero, and the
// empty string. Empty arrays and objects are present.
func Present(value any, present bool) bool {
	return present && value != nil && values.Var(value, "required") == nil
}

// Text is [Present] restricted to strings.
func Text(value any, present bool) bool {
	str, ok := value.(string)
	return ok && Present(str, present)
}

// OptionalText passes for absent and null values, and otherwise requires a
// string.
func OptionalText(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	_, ok := value.(string)
	return ok
}

// Email fails for a present value that is not a well-formed email address
// with a dotted domain. Absent values pass; pair it with [Present] to require
// the field.
func Email(value any, present bool) bool {
	if !Present(value, present) {
		return true
	}
	str, ok := value.(string)
	return ok && values.Var(str, "email") == nil
}
