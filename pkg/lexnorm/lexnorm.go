// Package lexnorm normalizes item and store names for vault matching:
// lower-case singular item names, capitalized store names.
package lexnorm

import "strings"

// Irregular plurals take precedence over the suffix rules.
var irregulars = map[string]string{
	"children": "child",
	"people":   "person",
	"men":      "man",
	"women":    "woman",
	"teeth":    "tooth",
	"feet":     "foot",
	"mice":     "mouse",
	"geese":    "goose",
	"loaves":   "loaf",
	"knives":   "knife",
	"leaves":   "leaf",
}

// Singularize converts a plural noun to its singular form using a fixed
// rule chain: irregular table, -ies, sibilant -es, generic -es, generic -s.
// It is a heuristic, not a dictionary. False positives such as
// "tomatoes" → "tomatoe" are accepted; the rules are idempotent, so a
// singular input always comes back unchanged.
func Singularize(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return w
	}

	if singular, ok := irregulars[w]; ok {
		return singular
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case hasSibilantESSuffix(w):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "es") && len(w) > 3:
		return w[:len(w)-1]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 2:
		// The "ss" guard keeps words like "glass" stable so that
		// applying the rules twice never changes the result again.
		return w[:len(w)-1]
	}
	return w
}

// hasSibilantESSuffix reports whether w ends in -shes, -ches, -sses,
// -xes or -zes, where the whole "es" is the plural marker.
func hasSibilantESSuffix(w string) bool {
	for _, suffix := range []string{"shes", "ches", "sses", "xes", "zes"} {
		if strings.HasSuffix(w, suffix) && len(w) > len(suffix) {
			return true
		}
	}
	return false
}

// CapitalizeStore upper-cases the first letter of a store name. The rest
// of the name keeps whatever case the user typed.
func CapitalizeStore(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
