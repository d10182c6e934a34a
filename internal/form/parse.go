package form

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseInt reads the leading integer of s the way a browser's parseInt does
// without a radix: leading whitespace is skipped, an optional sign and a
// 0x/0X hex prefix are accepted, and parsing stops at the first character
// that is not a digit. It returns nil when no digit could be read or the
// value does not fit in an int64.
func ParseInt(s string) *int64 {
	s = trimLeadingSpace(s)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return nil
	}

	digits := s[:end]
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseFloat reads the longest decimal literal at the start of s the way a
// browser's parseFloat does. Infinity and out of range values have no JSON
// representation and are reported as nil, like unparseable input.
func ParseFloat(s string) *float64 {
	s = trimLeadingSpace(s)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return nil
	}

	digits := 0
	for i < len(s) && isDigit(s[i], 10) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i], 10) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return nil
	}

	// exponent is only consumed when it is complete
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k], 10) {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
