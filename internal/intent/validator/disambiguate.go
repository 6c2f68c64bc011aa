package validator

import (
	"encoding/json"
	"strings"
)

// reminderWords are tokens that mark a delete target as a scheduled
// event rather than a vault item. Matched on whole words so "grass"
// never trips the "class" check.
var reminderWords = map[string]struct{}{
	"meet":        {},
	"meeting":     {},
	"appointment": {},
	"class":       {},
	"reminder":    {},
	"call":        {},
}

// reminderPhrased reports whether a DELETE payload targets reminder-style
// phrasing. It returns the first matching item's full text, lower-cased,
// as the cancellation substring.
func reminderPhrased(data json.RawMessage) (string, bool) {
	var raw rawDelete
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", false
	}
	for _, it := range raw.Items {
		name := strings.ToLower(strings.TrimSpace(it.Name))
		for _, word := range strings.Fields(name) {
			if _, ok := reminderWords[word]; ok {
				return name, true
			}
		}
	}
	return "", false
}
