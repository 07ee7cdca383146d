// Package tables loads rank-ordered frequency tables from TOML files.
package tables

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/freqgen/internal/model"
)

//go:embed data/*.toml
var defaultTables embed.FS

type tableFile struct {
	Lang     string       `toml:"lang"`
	Language string       `toml:"language"`
	Source   string       `toml:"source"`
	Entries  []tableEntry `toml:"entry"`
}

type tableEntry struct {
	Text      string   `toml:"text"`
	Frequency float64  `toml:"frequency"`
	Examples  []string `toml:"examples"`
}

// Load returns the table for a granularity and language. When dir is empty
// the table embedded in the binary is used; otherwise dir must contain a
// file named <granularity>_<lang>.toml.
func Load(dir string, granularity model.Granularity, lang string) (model.Table, error) {
	name := fileName(granularity, lang)
	var (
		data []byte
		err  error
	)
	if dir == "" {
		data, err = defaultTables.ReadFile("data/" + name)
	} else {
		data, err = os.ReadFile(filepath.Join(dir, name))
	}
	if err != nil {
		return model.Table{}, fmt.Errorf("failed to read table %s: %w", name, err)
	}
	return parse(name, data)
}

// Langs returns the language codes available for a granularity, sorted.
// When dir is empty the embedded tables are listed.
func Langs(dir string, granularity model.Granularity) ([]string, error) {
	var names []string
	if dir == "" {
		entries, err := defaultTables.ReadDir("data")
		if err != nil {
			return nil, fmt.Errorf("failed to list embedded tables: %w", err)
		}
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read tables dir: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			names = append(names, entry.Name())
		}
	}

	prefix := string(granularity) + "_"
	var langs []string
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".toml") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".toml"))
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no %s tables found", granularity)
	}
	sort.Strings(langs)
	return langs, nil
}

func fileName(granularity model.Granularity, lang string) string {
	return fmt.Sprintf("%s_%s.toml", granularity, strings.ToLower(lang))
}

func parse(name string, data []byte) (model.Table, error) {
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return model.Table{}, fmt.Errorf("failed to decode table %s: %w", name, err)
	}
	if file.Lang == "" || file.Language == "" {
		return model.Table{}, fmt.Errorf("table %s is missing lang metadata", name)
	}
	if len(file.Entries) == 0 {
		return model.Table{}, fmt.Errorf("table %s has no entries", name)
	}

	table := model.Table{
		Lang:     file.Lang,
		Language: file.Language,
		Source:   file.Source,
		Entries:  make([]model.RankedEntry, 0, len(file.Entries)),
	}
	for i, entry := range file.Entries {
		if entry.Text == "" {
			return model.Table{}, fmt.Errorf("table %s: entry %d has empty text", name, i)
		}
		table.Entries = append(table.Entries, model.RankedEntry{
			Text:      entry.Text,
			Frequency: entry.Frequency,
		})
		if len(entry.Examples) > 0 {
			if table.Examples == nil {
				table.Examples = make(model.ExampleSet)
			}
			table.Examples[entry.Text] = entry.Examples
		}
	}
	return table, nil
}
