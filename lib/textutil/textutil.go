package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return name
}

// NameSimilarity is the Jaro-Winkler similarity of two normalized names, in [0, 1].
func NameSimilarity(a, b string) float64 {
	a = NormalizeName(a)
	b = NormalizeName(b)
	if a == "" || b == "" {
		return 0
	}
	return matchr.JaroWinkler(a, b, false)
}
