package utils

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an integer with thousands separators,
// e.g. 50000 -> "50,000".
func FormatAmount(n int) string {
	return amountPrinter.Sprintf("%d", n)
}

// Pluralize returns the singular form for n == 1 and a naive plural
// otherwise. Good enough for "year" and "role"; not a general inflector.
func Pluralize(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}

// JoinWithAnd joins items into a natural-language list:
// "a", "a and b", "a, b, and c".
func JoinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
