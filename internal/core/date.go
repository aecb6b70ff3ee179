package core

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// timeScale turns the fractional part of a packed date into a six digit
// hhmmss code.
const timeScale = 1e6

// DecodeDate converts a packed YYYYMMDD.hhmmss number into a local time.
//
// Components are not range checked: a month of 13 rolls into January of the
// following year, the same way time.Date normalizes any overflow. Inputs
// whose components cannot be read at all (NaN, infinities, fewer than eight
// date digits) decode to the zero time. DecodeDate never fails.
func DecodeDate(v float64) time.Time {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}
	}

	whole := math.Trunc(v)
	code := int64(math.Floor((v-whole)*timeScale + 0.5))
	if code >= timeScale {
		code = timeScale - 1
	}

	datePart := strconv.FormatFloat(whole, 'f', -1, 64)
	timePart := padLeft(strconv.FormatInt(code, 10), 6, '0')

	year, ok1 := leadingInt(substr(datePart, 0, 4))
	month, ok2 := leadingInt(substr(datePart, 4, 6))
	day, ok3 := leadingInt(substr(datePart, 6, 8))
	hour, ok4 := leadingInt(substr(timePart, 0, 2))
	minute, ok5 := leadingInt(substr(timePart, 2, 4))
	second, ok6 := leadingInt(substr(timePart, 4, 6))
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return time.Time{}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
}

// substr returns s[from:to] clamped to the bounds of s.
func substr(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

func padLeft(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(pad), width-len(s)) + s
}

// leadingInt parses an optional sign followed by the longest run of digits.
// Trailing garbage is ignored; no digits at all is a failure.
func leadingInt(s string) (int, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
