package parser

import "strconv"

// prefixOrZero extracts the leading decimal digit run from s and parses it as
// an unsigned integer. Malformed input is not an error: a string with no
// numeric prefix (or one too large for uint64) simply contributes zero.
// Unit suffixes are ignored entirely, so values in different unit systems
// (e.g. Mi vs M) are summed as-is without conversion.
func prefixOrZero(s string) uint64 {
	digits := numericPrefix.FindString(s)
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseMemory converts a raw memory value string to its numeric magnitude.
// "128Mi" and "128M" both yield 128.
func parseMemory(s string) uint64 {
	return prefixOrZero(s)
}

// parseCPU converts a raw CPU value string to a fractional core count.
// Values are assumed to be in milli-units: "500m" yields 0.5.
func parseCPU(s string) float64 {
	return float64(prefixOrZero(s)) / 1000.0
}
