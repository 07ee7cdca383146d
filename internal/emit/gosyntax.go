package emit

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/freqgen/internal/model"
)

// GoSyntax emits slice-literal initializer functions for a Go content
// package.
type GoSyntax struct{}

// Name implements Syntax.
func (GoSyntax) Name() string { return "go" }

// Header implements Syntax.
func (GoSyntax) Header(spec Spec) []string {
	noun := unitNoun(spec.Granularity)
	subject := fmt.Sprintf("%s language %s", spec.Language, noun)
	if spec.Granularity == model.Words {
		subject = fmt.Sprintf("%s common words", spec.Language)
	}
	return []string{
		fmt.Sprintf("// %s (frequency-ordered)", subject),
		"//",
		fmt.Sprintf("// Source: %s", spec.Source),
		"// Frequencies normalized to 0.70-1.00 range for typing practice",
		fmt.Sprintf("// Top %d %s selected from corpus analysis", len(spec.Entries), noun),
		fmt.Sprintf("// Last updated: %s", spec.Date),
	}
}

// Open implements Syntax.
func (GoSyntax) Open(spec Spec) []string {
	fn := fmt.Sprintf("%s%s", spec.Language, exportedNoun(spec.Granularity))
	fn = strings.ToUpper(fn[:1]) + fn[1:]
	return []string{
		fmt.Sprintf("func %s() []%s {", fn, typeName(spec.Granularity)),
		fmt.Sprintf("\treturn []%s{", typeName(spec.Granularity)),
	}
}

// Entry implements Syntax.
func (GoSyntax) Entry(spec Spec, entry model.WeightedEntry, examples []string) []string {
	weight := fmt.Sprintf("%.*f", spec.Precision, entry.Weight)
	if spec.Granularity == model.Words {
		return []string{
			fmt.Sprintf("\t\tNewWord(\"%s\", %s),", escape(entry.Text), weight),
		}
	}
	return []string{
		fmt.Sprintf("\t\t// Corpus: %.2f%%", entry.Frequency),
		fmt.Sprintf("\t\tNew%s(\"%s\", %s, []string{%s}),",
			typeName(spec.Granularity), escape(entry.Text), weight, quoteList(examples)),
	}
}

// Close implements Syntax.
func (GoSyntax) Close(Spec) []string {
	return []string{"\t}", "}"}
}

func exportedNoun(granularity model.Granularity) string {
	switch granularity {
	case model.Words:
		return "Words"
	case model.Bigrams:
		return "Bigrams"
	default:
		return "Trigrams"
	}
}
