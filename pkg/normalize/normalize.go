// Package normalize canonicalizes folder and file names for tolerant comparison.
//
// Two names that differ only in accents, letter case, a leading ordinal
// ("02. ", "12-") or separators (space, '.', '_', '-') normalize to the same token.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ordinalPrefix matches a leading numeric ordinal such as "02. ", "2.", "12-" or "3 ".
var ordinalPrefix = regexp.MustCompile(`^\d+\s*[.\-]?\s*`)

var separators = strings.NewReplacer(" ", "", ".", "", "_", "", "-", "")

// Normalize returns the comparison token for name. It never fails and may return "".
//
// The result is stable: Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	token := strings.TrimSpace(strings.ToLower(stripAccents(name)))

	for {
		next := separators.Replace(ordinalPrefix.ReplaceAllString(token, ""))
		if next == token {
			return token
		}

		token = next
	}
}

// pluralEndings fold Portuguese plural endings onto the singular "ao".
var pluralEndings = []string{"oes", "aes", "aos"}

// Singular folds a plural ending off token: "oes", "aes" and "aos" become
// "ao", otherwise one trailing "s" is dropped. "declaracoes" and "declaracao"
// fold to the same token, as do "modelos" and "modelo".
func Singular(token string) string {
	for _, ending := range pluralEndings {
		if stem, found := strings.CutSuffix(token, ending); found {
			return stem + "ao"
		}
	}

	if len(token) > 1 {
		if stem, found := strings.CutSuffix(token, "s"); found {
			return stem
		}
	}

	return token
}

// Contains reports whether the token of haystack contains the token of needle,
// either as normalized or with plural endings folded on both sides.
// An empty needle token is never contained.
func Contains(haystack, needle string) bool {
	h, n := Normalize(haystack), Normalize(needle)
	if n == "" {
		return false
	}

	return strings.Contains(h, n) || strings.Contains(Singular(h), Singular(n))
}

// Equal reports whether a and b normalize to the same token.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}
