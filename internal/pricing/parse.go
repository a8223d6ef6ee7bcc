package pricing

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseAmount reads a raw input field as a number. Empty, non-numeric and
// non-finite input yields fallback; no error is ever reported.
func ParseAmount(raw string, fallback float64) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || !isFinite(v) {
		return fallback
	}
	return v
}

// ParsePercent coerces a percentage input to a number with a 0 fallback.
// It accepts raw text as well as already-decoded JSON numbers.
func ParsePercent(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case string:
		return ParseAmount(v, 0)
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil || !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
