package values

import (
	"math"
	"strconv"
	"strings"
)

// canonical parses value as a number accepting only its shortest decimal
// spelling, so "05", "5.0" and "+5" are rejected.
func canonical(value string) (float64, bool) {
	num, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
		return 0, false
	}
	return num, strconv.FormatFloat(num, 'f', -1, 64) == value
}

// IsPositiveInteger reports whether value is a non-negative whole number.
func IsPositiveInteger(value string) bool {
	num, ok := canonical(value)
	return ok && num >= 0 && num == math.Trunc(num)
}

// IsStrictPositiveInteger reports whether value is a whole number above zero.
func IsStrictPositiveInteger(value string) bool {
	num, ok := canonical(value)
	return ok && num > 0 && num == math.Trunc(num)
}

// IsValidSpacingMultiplier reports whether value is a non-negative multiple
// of 0.25 ("4", "0.5", "2.75").
func IsValidSpacingMultiplier(value string) bool {
	num, ok := canonical(value)
	return ok && num >= 0 && math.Mod(num, 0.25) == 0
}

// IsValidOpacityValue reports whether value is a whole percentage between 0 and 100.
func IsValidOpacityValue(value string) bool {
	num, ok := canonical(value)
	return ok && num >= 0 && num <= 100 && num == math.Trunc(num)
}

// IsFraction reports whether value is "a/b" with positive integer parts.
func IsFraction(value string) bool {
	num, den, ok := strings.Cut(value, "/")
	return ok && IsPositiveInteger(num) && IsStrictPositiveInteger(den)
}

// FormatNumber prints number without trailing zeros.
func FormatNumber(num float64) string {
	return strconv.FormatFloat(num, 'f', -1, 64)
}
