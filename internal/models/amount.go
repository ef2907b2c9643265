package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses user input into an expense amount.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted. A comma
// followed by exactly three digits (1,000) reads as digit grouping and is
// rejected, as is mixing both separators. Empty input, non-numeric text, NaN,
// infinities and negative values are rejected with ErrInvalidAmount. Zero is
// accepted.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if whole, frac, ok := strings.Cut(s, ","); ok {
		if strings.Contains(whole, ".") || strings.ContainsAny(frac, ".,") || len(frac) == 3 {
			return 0, ErrInvalidAmount
		}
		s = whole + "." + frac
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
