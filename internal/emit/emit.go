// Package emit renders weighted frequency entries as initializer source
// text for the downstream content module.
package emit

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/freqgen/internal/model"
)

// Spec describes one language block to emit.
type Spec struct {
	Language    string
	Granularity model.Granularity
	Source      string
	Date        string
	Entries     []model.WeightedEntry
	Examples    model.ExampleSet
	Precision   int
	MaxExamples int
}

// WithExamples reports whether the block carries per-unit example arrays.
func (s Spec) WithExamples() bool {
	return s.Granularity != model.Words
}

// Syntax renders one block into a target initializer syntax. Implementations
// must be pure: identical specs yield byte-identical text.
type Syntax interface {
	Name() string
	Header(spec Spec) []string
	Open(spec Spec) []string
	Entry(spec Spec, entry model.WeightedEntry, examples []string) []string
	Close(spec Spec) []string
}

// Result is an emitted block plus the units that received placeholder
// examples, for distinct flagging in the run summary.
type Result struct {
	Text    string
	Missing []string
}

// Render emits the provenance header and initializer block for a spec.
// Emission order is input order. Units without registered examples get a
// deterministic placeholder sequence of full arity; the block never has a
// variable-arity gap.
func Render(syntax Syntax, spec Spec) (Result, error) {
	if len(spec.Entries) == 0 {
		return Result{}, fmt.Errorf("nothing to emit for %s %s", spec.Language, spec.Granularity)
	}
	if spec.WithExamples() && spec.MaxExamples <= 0 {
		return Result{}, fmt.Errorf("max examples must be > 0 for %s", spec.Granularity)
	}

	var b strings.Builder
	var missing []string
	writeLines(&b, syntax.Header(spec))
	writeLines(&b, syntax.Open(spec))
	for _, entry := range spec.Entries {
		var examples []string
		if spec.WithExamples() {
			registered, ok := spec.Examples[entry.Text]
			if !ok || len(registered) == 0 {
				examples = Placeholders(spec.MaxExamples)
				missing = append(missing, entry.Text)
			} else if len(registered) > spec.MaxExamples {
				examples = registered[:spec.MaxExamples]
			} else {
				examples = registered
			}
		}
		writeLines(&b, syntax.Entry(spec, entry, examples))
	}
	writeLines(&b, syntax.Close(spec))
	return Result{Text: b.String(), Missing: missing}, nil
}

// Placeholders returns the deterministic stand-in example sequence used when
// a unit has no curated examples.
func Placeholders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("ex%d", i)
	}
	return out
}

// ForName returns the syntax registered under the given name.
func ForName(name string) (Syntax, error) {
	switch strings.ToLower(name) {
	case "rust":
		return RustSyntax{}, nil
	case "go":
		return GoSyntax{}, nil
	default:
		return nil, fmt.Errorf("unknown syntax %q (available: rust, go)", name)
	}
}

func writeLines(b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// escape backslash-escapes quote and backslash characters so the emitted
// literal stays well-formed in both target syntaxes.
func escape(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	return strings.ReplaceAll(text, `"`, `\"`)
}

func quoteList(examples []string) string {
	quoted := make([]string, len(examples))
	for i, example := range examples {
		quoted[i] = `"` + escape(example) + `"`
	}
	return strings.Join(quoted, ", ")
}

func unitNoun(granularity model.Granularity) string {
	switch granularity {
	case model.Words:
		return "words"
	case model.Bigrams:
		return "bigrams"
	default:
		return "trigrams"
	}
}

func typeName(granularity model.Granularity) string {
	switch granularity {
	case model.Words:
		return "Word"
	case model.Bigrams:
		return "Bigram"
	default:
		return "Trigram"
	}
}
