// Package pipeline composes normalization, validation and emission for one
// language table.
package pipeline

import (
	"fmt"

	"github.com/verte-zerg/freqgen/internal/emit"
	"github.com/verte-zerg/freqgen/internal/model"
	"github.com/verte-zerg/freqgen/internal/normalize"
	"github.com/verte-zerg/freqgen/internal/validate"
)

// Per-granularity defaults matching the generator scripts this tool replaces.
const (
	DefaultWordCount    = 500
	DefaultBigramCount  = 40
	DefaultTrigramCount = 20

	wordPrecision  = 3
	ngramPrecision = 2
	maxExamples    = 10
	topUnitCount   = 5
)

// Options fixes one pipeline instance. Count is caller-selectable; precision
// and example arity are per-granularity constants.
type Options struct {
	Granularity model.Granularity
	Count       int
	Precision   int
	MaxExamples int
}

// ForGranularity returns the default options of a granularity.
func ForGranularity(granularity model.Granularity) Options {
	switch granularity {
	case model.Words:
		return Options{Granularity: granularity, Count: DefaultWordCount, Precision: wordPrecision}
	case model.Bigrams:
		return Options{Granularity: granularity, Count: DefaultBigramCount, Precision: ngramPrecision, MaxExamples: maxExamples}
	default:
		return Options{Granularity: model.Trigrams, Count: DefaultTrigramCount, Precision: ngramPrecision, MaxExamples: maxExamples}
	}
}

// Outcome is one language's emitted block plus its issue report.
type Outcome struct {
	Block  string
	Report model.Report
}

// Run executes normalize → validate → emit for one table. Configuration
// errors abort before emission; validation failures and missing examples are
// collected into the report and never stop the run.
func Run(table model.Table, opts Options, syntax emit.Syntax, date string) (Outcome, error) {
	weighted, err := normalize.Normalize(table.Entries, opts.Count, opts.Precision)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to normalize %s %s: %w", table.Language, opts.Granularity, err)
	}

	report := model.Report{
		Lang:        table.Lang,
		Granularity: opts.Granularity,
		Selected:    len(weighted),
		FirstWeight: weighted[0].Weight,
		LastWeight:  weighted[len(weighted)-1].Weight,
		TopUnits:    topUnits(weighted),
	}

	spec := emit.Spec{
		Language:    table.Language,
		Granularity: opts.Granularity,
		Source:      table.Source,
		Date:        date,
		Entries:     weighted,
		Precision:   opts.Precision,
		MaxExamples: opts.MaxExamples,
	}
	if spec.WithExamples() {
		spec.Examples = table.Examples
		report.Failures = validate.CheckSet(weighted, table.Examples)
	}

	rendered, err := emit.Render(syntax, spec)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to emit %s %s: %w", table.Language, opts.Granularity, err)
	}
	report.MissingExamples = rendered.Missing

	return Outcome{Block: rendered.Text, Report: report}, nil
}

func topUnits(entries []model.WeightedEntry) []string {
	n := topUnitCount
	if len(entries) < n {
		n = len(entries)
	}
	units := make([]string, n)
	for i := 0; i < n; i++ {
		units[i] = entries[i].Text
	}
	return units
}
