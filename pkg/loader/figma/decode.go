package figma

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrDecode is returned when the API response is not a JSON object.
var ErrDecode = errors.New("invalid figma response")

// Decode parses a JSON document whose top level must be an object.
func Decode(body []byte) (Mapping, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrDecode)
	}

	r := gjson.ParseBytes(body)
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrDecode, kind(r))
	}

	m, _ := fromResult(r).(Mapping)
	return m, nil
}

// Flatten decodes body and renders it as indented plain text.
func Flatten(body []byte) (string, error) {
	m, err := Decode(body)
	if err != nil {
		return "", err
	}
	return m.Flatten(), nil
}

func kind(r gjson.Result) string {
	if r.IsArray() {
		return "array"
	}
	return r.Type.String()
}
