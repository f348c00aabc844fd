package tutors

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NormalizeSubject canonicalizes a free-text subject name so "math",
// "MATH" and " Math " all store and group as "Math".
func NormalizeSubject(subject string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(subject)))
}

// NormalizeSubjects canonicalizes and dedupes a subject list, preserving
// first-seen order and dropping blanks.
func NormalizeSubjects(subjects []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		norm := NormalizeSubject(s)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}
