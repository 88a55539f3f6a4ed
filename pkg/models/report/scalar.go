package report

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Scalar holds a single loosely-typed report value: the analysis service emits
// counts as numbers, numeric strings or booleans depending on the upstream
// column dtype, and example cells may even be nested objects or arrays.
type Scalar struct {
	v any // nil, bool, string, json.Number, or json.RawMessage for composites
}

// Num builds a numeric Scalar. Mostly useful in tests and fixtures.
func Num(v float64) Scalar {
	return Scalar{v: json.Number(strconv.FormatFloat(v, 'f', -1, 64))}
}

// Str builds a string Scalar.
func Str(v string) Scalar {
	return Scalar{v: v}
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		s.v = nil
		return nil
	}
	if data[0] == '{' || data[0] == '[' {
		raw := make(json.RawMessage, len(data))
		copy(raw, data)
		s.v = raw
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	s.v = v
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	switch v := s.v.(type) {
	case nil:
		return []byte("null"), nil
	case json.RawMessage:
		return v, nil
	default:
		return json.Marshal(v)
	}
}

// IsNull reports whether the value was absent or an explicit JSON null.
func (s Scalar) IsNull() bool {
	return s.v == nil
}

// String renders the value the way the report tables display it: composite
// values become their compact JSON text, scalars render as-is.
func (s Scalar) String() string {
	switch v := s.v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case json.RawMessage:
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return string(v)
		}
		return buf.String()
	default:
		return ""
	}
}

// Float64 coerces the value to a number. Booleans count as 0/1 and anything
// non-numeric coerces to 0 so NaN never reaches chart rendering.
func (s Scalar) Float64() float64 {
	switch v := s.v.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}
