package types

import "math"

// AsInt64 narrows any numeric primitive to int64. Floating point values are
// truncated toward zero and saturate at the int64 range; NaN becomes 0.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float32:
		return saturate(float64(n), math.MinInt64, math.MaxInt64), true
	case float64:
		return saturate(n, math.MinInt64, math.MaxInt64), true
	}
	return 0, false
}

// AsInt32 narrows any numeric primitive to int32. Integers wrap, floating
// point values saturate.
func AsInt32(v any) (int32, bool) {
	switch n := v.(type) {
	case float32:
		return int32(saturate(float64(n), math.MinInt32, math.MaxInt32)), true
	case float64:
		return int32(saturate(n, math.MinInt32, math.MaxInt32)), true
	}
	l, ok := AsInt64(v)
	return int32(l), ok
}

// AsFloat64 widens any numeric primitive to float64.
func AsFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	l, ok := AsInt64(v)
	return float64(l), ok
}

// IsNumeric reports whether v is a numeric primitive.
func IsNumeric(v any) bool {
	switch v.(type) {
	case int8, int16, int32, int64, int, float32, float64:
		return true
	}
	return false
}

func saturate(f, lo, hi float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= lo:
		return int64(lo)
	case f >= hi:
		if hi == math.MaxInt64 {
			return math.MaxInt64
		}
		return int64(hi)
	}
	return int64(f)
}
