package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/freqgen/internal/model"
)

func TestLoadEmbeddedWords(t *testing.T) {
	table, err := Load("", model.Words, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Language != "English" {
		t.Fatalf("unexpected language: %q", table.Language)
	}
	if len(table.Entries) != 500 {
		t.Fatalf("expected 500 word entries, got %d", len(table.Entries))
	}
	if table.Entries[0].Text != "the" {
		t.Fatalf("expected rank 0 to be \"the\", got %q", table.Entries[0].Text)
	}
	if table.Examples != nil {
		t.Fatalf("word tables should not carry examples")
	}
}

func TestLoadEmbeddedBigramsKeepsOrderAndExamples(t *testing.T) {
	table, err := Load("", model.Bigrams, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTop := []string{"th", "he", "in", "er", "an"}
	for i, want := range wantTop {
		if table.Entries[i].Text != want {
			t.Fatalf("rank %d: expected %q, got %q", i, want, table.Entries[i].Text)
		}
	}
	examples, ok := table.Examples["th"]
	if !ok {
		t.Fatalf("expected examples for th")
	}
	if examples[0] != "the" {
		t.Fatalf("example order not preserved: %v", examples)
	}
}

func TestLoadEmbeddedAllGranularities(t *testing.T) {
	for _, granularity := range []model.Granularity{model.Words, model.Bigrams, model.Trigrams} {
		for _, lang := range []string{"en", "fr"} {
			table, err := Load("", granularity, lang)
			if err != nil {
				t.Fatalf("%s/%s: %v", granularity, lang, err)
			}
			if len(table.Entries) == 0 {
				t.Fatalf("%s/%s: empty table", granularity, lang)
			}
		}
	}
}

func TestLangs(t *testing.T) {
	langs, err := Langs("", model.Trigrams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "fr" {
		t.Fatalf("unexpected langs: %v", langs)
	}
}

func TestLoadFromDirOverride(t *testing.T) {
	dir := t.TempDir()
	content := `lang = "en"
language = "English"
source = "test corpus"

[[entry]]
text = "aa"
frequency = 2.0
examples = ["aardvark"]

[[entry]]
text = "bb"
frequency = 1.0
`
	if err := os.WriteFile(filepath.Join(dir, "bigrams_en.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}
	table, err := Load(dir, model.Bigrams, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Entries) != 2 || table.Entries[1].Text != "bb" {
		t.Fatalf("unexpected entries: %+v", table.Entries)
	}
	if _, ok := table.Examples["bb"]; ok {
		t.Fatalf("bb should have no examples registered")
	}
}

func TestLoadRejectsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	content := "lang = \"en\"\nlanguage = \"English\"\n"
	if err := os.WriteFile(filepath.Join(dir, "words_en.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}
	if _, err := Load(dir, model.Words, "en"); err == nil {
		t.Fatalf("expected error for table with no entries")
	}
}
