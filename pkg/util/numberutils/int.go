package numberutils

import "strconv"

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// ClampInt limits num to [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
