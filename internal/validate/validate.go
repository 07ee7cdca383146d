// Package validate checks that example words contain their unit pattern.
package validate

import (
	"strings"

	"github.com/verte-zerg/freqgen/internal/model"
)

// Contains reports whether the pattern occurs in the example,
// case-insensitively.
func Contains(pattern, example string) bool {
	return strings.Contains(strings.ToLower(example), strings.ToLower(pattern))
}

// CheckExamples returns the examples that do not contain the pattern.
// Failures are curation errors to surface, never reasons to drop data.
func CheckExamples(pattern string, examples []string) []model.ValidationFailure {
	var failures []model.ValidationFailure
	for _, example := range examples {
		if !Contains(pattern, example) {
			failures = append(failures, model.ValidationFailure{Pattern: pattern, Example: example})
		}
	}
	return failures
}

// CheckSet validates every selected unit against its example set. Units
// without registered examples are skipped here; the emitter substitutes
// placeholders and reports them separately.
func CheckSet(entries []model.WeightedEntry, examples model.ExampleSet) []model.ValidationFailure {
	var failures []model.ValidationFailure
	for _, entry := range entries {
		list, ok := examples[entry.Text]
		if !ok {
			continue
		}
		failures = append(failures, CheckExamples(entry.Text, list)...)
	}
	return failures
}
