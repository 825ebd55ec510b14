// Package serialize converts component values to and from their JSON transport
// form.
//
// Each serializer covers one value shape. Components embed the serializer
// matching what they exchange with the browser: a checkbox is a [Bool], a
// textbox a [String], sliders and numbers a [Number], an image component an
// [Image] carrying base64 data URIs.
package serialize

import (
	"encoding/json"

	"github.com/go-vitrine/vitrine/pkg/errors"
)

// Bool serializes boolean values.
type Bool struct{}

// Encode renders v as a JSON boolean.
func (Bool) Encode(v bool) (json.RawMessage, error) {
	return json.Marshal(v)
}

// Decode parses a JSON boolean. Anything else is a serialize error.
func (Bool) Decode(raw json.RawMessage) (bool, error) {
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, errors.Ef("serialize.Bool", errors.KindSerialize, "expected a JSON boolean, got %s", compact(raw))
	}
	return v, nil
}

// String serializes string values.
type String struct{}

func (String) Encode(v string) (json.RawMessage, error) {
	return json.Marshal(v)
}

func (String) Decode(raw json.RawMessage) (string, error) {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", errors.Ef("serialize.String", errors.KindSerialize, "expected a JSON string, got %s", compact(raw))
	}
	return v, nil
}

// Number serializes numeric values. All JSON numbers travel as float64.
type Number struct{}

func (Number) Encode(v float64) (json.RawMessage, error) {
	return json.Marshal(v)
}

func (Number) Decode(raw json.RawMessage) (float64, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errors.Ef("serialize.Number", errors.KindSerialize, "expected a JSON number, got %s", compact(raw))
	}
	return v, nil
}

// compact truncates raw for error messages.
func compact(raw json.RawMessage) string {
	const limit = 40
	s := string(raw)
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
