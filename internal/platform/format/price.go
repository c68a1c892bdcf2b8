// Package format renders numbers for the interactive shell. It owns no
// business rules; the services hand it plain values.
package format

import "strconv"

// Price renders an amount with thousands separators, e.g. 1234500 -> "1,234,500".
func Price(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// ParsePrice accepts plain digits or comma-grouped input ("15000", "15,000").
// Validity of the grouping is checked by the validate package before parsing.
func ParsePrice(s string) (int64, error) {
	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			continue
		}
		cleaned = append(cleaned, s[i])
	}
	return strconv.ParseInt(string(cleaned), 10, 64)
}
