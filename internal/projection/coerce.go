package projection

import "strconv"

// The form never blocks on bad numeric input: a field that fails to parse is
// treated as zero. Parsing follows the longest-leading-prefix rule, so
// "12abc" coerces to 12 and "1.5e2x" to 150.

// CoerceFloat parses the longest numeric prefix of s, returning 0 when no
// prefix parses.
func CoerceFloat(s string) float64 {
	s = trimLeadingSpace(s)
	end := floatPrefixLen(s)
	for end > 0 {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v
		}
		end--
	}
	return 0
}

// CoerceInt parses the longest decimal-integer prefix of s, returning 0 when
// no prefix parses.
func CoerceInt(s string) int {
	s = trimLeadingSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return v
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return s[i:]
}

// floatPrefixLen returns the length of the longest candidate numeric prefix:
// sign, digits, decimal point, digits, exponent. The candidate is then
// validated by strconv.ParseFloat with backtracking for trailing partials
// such as "1e" or "2.".
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
