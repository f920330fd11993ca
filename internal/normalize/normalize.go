package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name folds a player name for case-insensitive lookups: lowercased,
// trimmed, inner whitespace collapsed to single spaces.
func Name(name string) string {
	return cases.Lower(language.English).String(strings.Join(strings.Fields(name), " "))
}
