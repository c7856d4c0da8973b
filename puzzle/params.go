package puzzle

import (
	"fmt"
	"math"
	"strconv"
)

// Params holds named scalar settings for one day, as decoded from YAML.
type Params map[string]any

// Merge returns a new Params with the keys of other layered over p.
func (p Params) Merge(other Params) Params {
	out := make(Params, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}

	return out
}

// Int returns the integer stored under key, or def when the key is absent.
func (p Params) Int(key string, def int) (int, error) {
	n, err := p.Int64(key, int64(def))
	if err != nil {
		return 0, err
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, fmt.Errorf("%w: %s=%d overflows int", ErrBadParam, key, n)
	}

	return int(n), nil
}

// Int64 returns the integer stored under key, or def when the key is absent.
// Integral floats and decimal strings are accepted.
func (p Params) Int64(key string, def int64) (int64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x), nil
		}
	case float64:
		if x == math.Trunc(x) && math.Abs(x) <= 1<<53 {
			return int64(x), nil
		}
	case string:
		if n, err := strconv.ParseInt(x, 10, 64); err == nil {
			return n, nil
		}
	}

	return 0, fmt.Errorf("%w: %s=%v is not an integer", ErrBadParam, key, v)
}

// String returns the string stored under key, or def when the key is absent.
func (p Params) String(key, def string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s=%v is not a string", ErrBadParam, key, v)
	}

	return s, nil
}
