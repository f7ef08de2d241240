package search

import "strings"

// Classification routes a query either to the text-search endpoint or to the
// numeric measurement-range endpoints. The two groups are mutually
// exclusive; an empty query activates neither.
type Classification int

const (
	ClassNone Classification = iota
	ClassText
	ClassNumeric
)

func (c Classification) String() string {
	switch c {
	case ClassText:
		return "text"
	case ClassNumeric:
		return "numeric"
	default:
		return "none"
	}
}

// Classify trims the query and classifies it. NUMERIC means the whole string
// is a base-10 integer or decimal with an optional leading sign; anything
// else non-empty is TEXTUAL. A failed numeric parse is never an error, it is
// simply text.
func Classify(q string) Classification {
	s := strings.TrimSpace(q)
	if s == "" {
		return ClassNone
	}
	if isNumber(s) {
		return ClassNumeric
	}
	return ClassText
}

func isNumber(s string) bool {
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits, dot := 0, false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}
