package emit

import (
	"strings"
	"testing"

	"github.com/verte-zerg/freqgen/internal/model"
)

func wordSpec() Spec {
	return Spec{
		Language:    "English",
		Granularity: model.Words,
		Source:      "COCA corpus (https://www.wordfrequency.info/)",
		Date:        "2026-08-29",
		Precision:   3,
		Entries: []model.WeightedEntry{
			{Text: "the", Frequency: 100, Weight: 1.00},
			{Text: "of", Frequency: 50, Weight: 0.85},
			{Text: "and", Frequency: 10, Weight: 0.70},
		},
	}
}

func bigramSpec() Spec {
	return Spec{
		Language:    "English",
		Granularity: model.Bigrams,
		Source:      "Peter Norvig (http://norvig.com/mayzner.html)",
		Date:        "2026-08-29",
		Precision:   2,
		MaxExamples: 10,
		Entries: []model.WeightedEntry{
			{Text: "th", Frequency: 3.56, Weight: 1.00},
			{Text: "he", Frequency: 3.07, Weight: 0.70},
		},
		Examples: model.ExampleSet{
			"th": {"the", "that", "with"},
		},
	}
}

func TestRenderRustWords(t *testing.T) {
	result, err := Render(RustSyntax{}, wordSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(result.Text, "\n"), "\n")
	if lines[0] != "/// English common words (frequency-ordered)" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[6] != "pub fn english_words() -> Vec<Word> {" {
		t.Fatalf("unexpected function line: %q", lines[6])
	}
	if lines[8] != `        Word::new("the", 1.000),` {
		t.Fatalf("unexpected entry line: %q", lines[8])
	}
	if lines[len(lines)-1] != "}" || lines[len(lines)-2] != "    ]" {
		t.Fatalf("unexpected closing lines: %q", lines[len(lines)-2:])
	}
	if len(result.Missing) != 0 {
		t.Fatalf("word blocks should never report missing examples")
	}
}

func TestRenderRustBigramsWithExamplesAndPlaceholders(t *testing.T) {
	result, err := Render(RustSyntax{}, bigramSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Text, "        // Corpus: 3.56%") {
		t.Fatalf("missing corpus comment:\n%s", result.Text)
	}
	if !strings.Contains(result.Text, `Bigram::new("th", 1.00, &["the", "that", "with"]),`) {
		t.Fatalf("missing bigram entry:\n%s", result.Text)
	}
	if !strings.Contains(result.Text, `Bigram::new("he", 0.70, &["ex0", "ex1", "ex2", "ex3", "ex4", "ex5", "ex6", "ex7", "ex8", "ex9"]),`) {
		t.Fatalf("missing placeholder entry:\n%s", result.Text)
	}
	if len(result.Missing) != 1 || result.Missing[0] != "he" {
		t.Fatalf("unexpected missing units: %v", result.Missing)
	}
}

func TestRenderTruncatesExamples(t *testing.T) {
	spec := bigramSpec()
	spec.Examples["th"] = []string{
		"e1", "e2", "e3", "e4", "e5", "e6", "e7", "e8", "e9", "e10", "e11", "e12",
	}
	result, err := Render(RustSyntax{}, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(result.Text, "e11") {
		t.Fatalf("more than 10 examples emitted:\n%s", result.Text)
	}
	if !strings.Contains(result.Text, `"e10"`) {
		t.Fatalf("expected first 10 examples to survive:\n%s", result.Text)
	}
}

func TestRenderIdempotent(t *testing.T) {
	first, err := Render(RustSyntax{}, bigramSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(RustSyntax{}, bigramSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Text != second.Text {
		t.Fatalf("emitter output is not byte-identical across runs")
	}
}

func TestRenderEscapesQuotes(t *testing.T) {
	spec := wordSpec()
	spec.Entries = []model.WeightedEntry{{Text: `do"not`, Frequency: 1, Weight: 1.00}}
	result, err := Render(RustSyntax{}, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Text, `Word::new("do\"not", 1.000),`) {
		t.Fatalf("quote not escaped:\n%s", result.Text)
	}
	// Balanced delimiters: every line has an even count of unescaped quotes.
	for _, line := range strings.Split(result.Text, "\n") {
		unescaped := strings.Count(line, `"`) - strings.Count(line, `\"`)
		if unescaped%2 != 0 {
			t.Fatalf("unbalanced quotes in line %q", line)
		}
	}
}

func TestRenderGoSyntax(t *testing.T) {
	result, err := Render(GoSyntax{}, bigramSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Text, "func EnglishBigrams() []Bigram {") {
		t.Fatalf("unexpected go function:\n%s", result.Text)
	}
	if !strings.Contains(result.Text, "\t\tNewBigram(\"th\", 1.00, []string{\"the\", \"that\", \"with\"}),") {
		t.Fatalf("unexpected go entry:\n%s", result.Text)
	}
}

func TestForName(t *testing.T) {
	for _, name := range []string{"rust", "go", "Rust"} {
		if _, err := ForName(name); err != nil {
			t.Fatalf("expected syntax %q to resolve: %v", name, err)
		}
	}
	if _, err := ForName("swift"); err == nil {
		t.Fatalf("expected error for unknown syntax")
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders(3)
	if len(got) != 3 || got[0] != "ex0" || got[2] != "ex2" {
		t.Fatalf("unexpected placeholders: %v", got)
	}
}
