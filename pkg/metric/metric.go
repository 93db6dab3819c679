// Package metric absorbs the backend's mixed representation of proportional
// stats. The same logical quantity arrives either as a formatted string
// ("53.54%"), a raw 0-100 number, or not at all; every function here is total
// and never panics, since the output feeds bar widths and display text where
// a crash would cost a whole page over a cosmetic issue.
package metric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Placeholder is the single user-visible marker for a missing stat.
// Centralized here so every surface renders missing data the same way.
const Placeholder = "—"

type kind uint8

const (
	kindMissing kind = iota
	kindNumber
	kindFormatted
)

// PercentLike is the tagged representation of a proportion as the backend
// ships it: a raw number, a formatted percent string, or missing.
type PercentLike struct {
	kind kind
	num  float64
	raw  string
}

// Missing is the absent value. The zero value of PercentLike is Missing.
var Missing = PercentLike{}

// Number wraps a raw value already on the 0-100 scale.
func Number(v float64) PercentLike {
	return PercentLike{kind: kindNumber, num: v}
}

// Formatted wraps a display string such as "53.54%".
func Formatted(s string) PercentLike {
	return PercentLike{kind: kindFormatted, raw: s}
}

// IsMissing reports whether no value arrived at all.
func (p PercentLike) IsMissing() bool {
	return p.kind == kindMissing
}

// UnmarshalJSON accepts a JSON number, string or null. Any other shape
// decodes as Missing rather than failing, keeping payload decoding total.
func (p *PercentLike) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = Missing
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = Number(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*p = Formatted(str)
		return nil
	}

	*p = Missing
	return nil
}

// MarshalJSON round-trips the source shape.
func (p PercentLike) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case kindNumber:
		return json.Marshal(p.num)
	case kindFormatted:
		return json.Marshal(p.raw)
	default:
		return []byte("null"), nil
	}
}

// ToClampedPercent converts a PercentLike to a number in [0,100] for
// proportional use (bar widths). Missing and garbage both resolve to 0,
// out-of-range values clamp to the nearest boundary. Never NaN or Inf.
//
// A bare numeric string without a trailing "%" is taken as an already-0-100
// number, so "0.53" means 0.53%, not 53%. The recap backend has always
// formatted percentages with the suffix, keeping this path unambiguous.
func ToClampedPercent(p PercentLike) float64 {
	switch p.kind {
	case kindNumber:
		return clamp(p.num, 0, 100)
	case kindFormatted:
		s := strings.TrimSpace(p.raw)
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimSpace(s)
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return clamp(v, 0, 100)
	default:
		return 0
	}
}

// Fraction converts a PercentLike to a 0-1 fraction for the export schema.
// The second return distinguishes "known zero" from "unknown": missing and
// unparsable values report false so the caller can omit the field entirely.
func (p PercentLike) Fraction() (float64, bool) {
	switch p.kind {
	case kindNumber:
		if math.IsNaN(p.num) {
			return 0, false
		}
		return clamp(p.num/100, 0, 1), true
	case kindFormatted:
		s := strings.TrimSpace(p.raw)
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimSpace(s)
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) {
			return 0, false
		}
		return clamp(v/100, 0, 1), true
	default:
		return 0, false
	}
}

// ToFixedDisplay formats any value as a fixed-precision string, or returns
// the placeholder when there is no finite number behind it. This is the one
// point where "missing stat" becomes user-visible text.
func ToFixedDisplay(value any, precision int) string {
	v, ok := toFloat(value)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if precision < 0 {
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Coerce the usual JSON-decoded shapes to a float.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case PercentLike:
		if v.IsMissing() {
			return 0, false
		}
		return ToClampedPercent(v), true
	default:
		return 0, false
	}
}

func clamp(v float64, lo float64, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
