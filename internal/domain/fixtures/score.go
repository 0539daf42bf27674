package fixtures

import (
	"math"
	"strconv"
	"strings"
)

// ParseScore coerces an upstream score to an integer. Blank or non-numeric
// input yields nil.
func ParseScore(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(f)
	return &n
}
