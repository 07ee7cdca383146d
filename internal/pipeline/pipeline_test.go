package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/freqgen/internal/emit"
	"github.com/verte-zerg/freqgen/internal/model"
	"github.com/verte-zerg/freqgen/internal/normalize"
)

func bigramTable() model.Table {
	return model.Table{
		Lang:     "en",
		Language: "English",
		Source:   "test corpus",
		Entries: []model.RankedEntry{
			{Text: "th", Frequency: 3.56},
			{Text: "he", Frequency: 3.07},
			{Text: "in", Frequency: 2.43},
		},
		Examples: model.ExampleSet{
			"th": {"the", "that", "cat"},
			"he": {"he", "the"},
		},
	}
}

func TestRunBigramPipeline(t *testing.T) {
	opts := ForGranularity(model.Bigrams)
	opts.Count = 3
	outcome, err := Run(bigramTable(), opts, emit.RustSyntax{}, "2026-08-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := outcome.Report
	if report.Selected != 3 || report.FirstWeight != 1.00 || report.LastWeight != 0.70 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Valid() {
		t.Fatalf("expected validation failure for cat")
	}
	if len(report.Failures) != 1 || report.Failures[0].Example != "cat" {
		t.Fatalf("unexpected failures: %+v", report.Failures)
	}
	if len(report.MissingExamples) != 1 || report.MissingExamples[0] != "in" {
		t.Fatalf("unexpected missing examples: %v", report.MissingExamples)
	}

	// Failures are non-fatal: the offending example is emitted unchanged.
	if !strings.Contains(outcome.Block, `"cat"`) {
		t.Fatalf("failing example dropped from output:\n%s", outcome.Block)
	}
	if !strings.Contains(outcome.Block, "pub fn english_bigrams() -> Vec<Bigram> {") {
		t.Fatalf("unexpected block:\n%s", outcome.Block)
	}
}

func TestRunWordsPipelineSkipsValidation(t *testing.T) {
	table := model.Table{
		Lang:     "en",
		Language: "English",
		Source:   "test corpus",
		Entries: []model.RankedEntry{
			{Text: "the", Frequency: 100},
			{Text: "of", Frequency: 50},
		},
	}
	opts := ForGranularity(model.Words)
	opts.Count = 2
	outcome, err := Run(table, opts, emit.RustSyntax{}, "2026-08-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Report.Valid() || outcome.Report.MissingExamples != nil {
		t.Fatalf("word pipeline should carry no example issues: %+v", outcome.Report)
	}
	if !strings.Contains(outcome.Block, `Word::new("the", 1.000),`) {
		t.Fatalf("unexpected block:\n%s", outcome.Block)
	}
}

func TestRunInvalidCountFailsBeforeEmission(t *testing.T) {
	opts := ForGranularity(model.Bigrams)
	opts.Count = 0
	_, err := Run(bigramTable(), opts, emit.RustSyntax{}, "2026-08-29")
	if !errors.Is(err, normalize.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestForGranularityDefaults(t *testing.T) {
	words := ForGranularity(model.Words)
	if words.Count != 500 || words.Precision != 3 || words.MaxExamples != 0 {
		t.Fatalf("unexpected word defaults: %+v", words)
	}
	bigrams := ForGranularity(model.Bigrams)
	if bigrams.Count != 40 || bigrams.Precision != 2 || bigrams.MaxExamples != 10 {
		t.Fatalf("unexpected bigram defaults: %+v", bigrams)
	}
	trigrams := ForGranularity(model.Trigrams)
	if trigrams.Count != 20 || trigrams.Precision != 2 {
		t.Fatalf("unexpected trigram defaults: %+v", trigrams)
	}
}
