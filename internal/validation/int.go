package validation

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Int is an int64 request field decoded leniently: a JSON integer, an
// integral float such as 1.0, or a string holding either is accepted.
type Int int64

func (n *Int) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	kind := jsonKind(raw)
	if kind == "string" {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}

	if kind == "number" || kind == "string" {
		if v, ok := ParseInt(raw); ok {
			*n = Int(v)
			return nil
		}
	}
	// the decoder fills in the field name
	return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(int64(0))}
}

func (n Int) Int64() int64 {
	return int64(n)
}

// ParseInt parses s as a base-10 integer, falling back to an integral
// float that fits in int64.
func ParseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return IntFromFloat(f)
}

// IntFromFloat converts f when it is integral and within int64 range.
// NaN and infinities are rejected.
func IntFromFloat(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func jsonKind(raw string) string {
	if raw == "" {
		return "value"
	}
	switch raw[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	case '{':
		return "object"
	case '[':
		return "array"
	default:
		return "number"
	}
}
