package figma

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Value is a decoded JSON value. It is one of String, Mapping, Sequence or Scalar.
type Value interface {
	// Render returns the flattened text form of the value.
	Render() string
	value()
}

// String is a JSON string.
type String string

// Scalar is a JSON number, boolean or null, held in its rendered form:
// True, False, None, integers as written and other numbers in float form
// (1e2 renders as 100.0).
type Scalar string

// Sequence is a JSON array.
type Sequence []Value

// Field is one key of a Mapping.
type Field struct {
	Key   string
	Value Value
}

// Mapping is a JSON object with its keys in document order.
type Mapping []Field

func (String) value()   {}
func (Scalar) value()   {}
func (Sequence) value() {}
func (Mapping) value()  {}

// Render returns the string itself.
func (s String) Render() string { return string(s) }

// Render returns the rendered scalar, e.g. "42", "True" or "None".
func (s Scalar) Render() string { return string(s) }

// Render joins the rendered elements with newlines.
func (s Sequence) Render() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = v.Render()
	}
	return strings.Join(parts, "\n")
}

// Render places a nested mapping on its own lines below the parent key.
func (m Mapping) Render() string {
	return "\n" + m.Flatten()
}

// Flatten writes one "key: value" line per field. Every line, including the
// last, ends in a newline, so nested mappings leave a blank line behind them.
func (m Mapping) Flatten() string {
	var sb strings.Builder
	for _, f := range m {
		sb.WriteString(f.Key)
		sb.WriteString(": ")
		sb.WriteString(f.Value.Render())
		sb.WriteString("\n")
	}
	return sb.String()
}

// fromResult converts a parsed gjson result into a Value.
func fromResult(r gjson.Result) Value {
	switch {
	case r.IsObject():
		var m Mapping
		index := make(map[string]int)
		r.ForEach(func(k, v gjson.Result) bool {
			// A repeated key keeps its first position but takes the last value
			if i, ok := index[k.Str]; ok {
				m[i].Value = fromResult(v)
				return true
			}
			index[k.Str] = len(m)
			m = append(m, Field{Key: k.Str, Value: fromResult(v)})
			return true
		})
		return m
	case r.IsArray():
		seq := Sequence{}
		r.ForEach(func(_, v gjson.Result) bool {
			seq = append(seq, fromResult(v))
			return true
		})
		return seq
	case r.Type == gjson.String:
		return String(r.Str)
	case r.Type == gjson.True:
		return Scalar("True")
	case r.Type == gjson.False:
		return Scalar("False")
	case r.Type == gjson.Number:
		return Scalar(formatNumber(strings.TrimSpace(r.Raw)))
	default:
		return Scalar("None")
	}
}

// formatNumber renders a JSON number literal. Integer literals keep their
// digits; anything with a fraction or exponent is a float and gets the
// shortest round-trip form, with ".0" for whole values and exponent
// notation below 1e-4 or from 1e16 up.
func formatNumber(raw string) string {
	if !strings.ContainsAny(raw, ".eE") {
		if strings.Trim(raw, "-0") == "" {
			return "0"
		}
		return raw
	}

	f, _ := strconv.ParseFloat(raw, 64)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	// Shortest round-trip digits; Go's exponent form (1e+16, 1.5e-05)
	// is kept outside the fixed-point range.
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	if _, exp, ok := strings.Cut(sci, "e"); ok {
		if n, err := strconv.Atoi(exp); err == nil && (n < -4 || n >= 16) {
			return sci
		}
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}
