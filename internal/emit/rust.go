package emit

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/freqgen/internal/model"
)

// RustSyntax emits vec! initializer functions for the Rust content module
// (src/content/common_word.rs, bigram.rs, trigram.rs).
type RustSyntax struct{}

// Name implements Syntax.
func (RustSyntax) Name() string { return "rust" }

// Header implements Syntax.
func (RustSyntax) Header(spec Spec) []string {
	noun := unitNoun(spec.Granularity)
	subject := fmt.Sprintf("%s language %s", spec.Language, noun)
	if spec.Granularity == model.Words {
		subject = fmt.Sprintf("%s common words", spec.Language)
	}
	return []string{
		fmt.Sprintf("/// %s (frequency-ordered)", subject),
		"///",
		fmt.Sprintf("/// Source: %s", spec.Source),
		"/// Frequencies normalized to 0.70-1.00 range for typing practice",
		fmt.Sprintf("/// Top %d %s selected from corpus analysis", len(spec.Entries), noun),
		fmt.Sprintf("/// Last updated: %s", spec.Date),
	}
}

// Open implements Syntax.
func (RustSyntax) Open(spec Spec) []string {
	fn := fmt.Sprintf("%s_%s", strings.ToLower(spec.Language), unitNoun(spec.Granularity))
	return []string{
		fmt.Sprintf("pub fn %s() -> Vec<%s> {", fn, typeName(spec.Granularity)),
		"    vec![",
	}
}

// Entry implements Syntax.
func (RustSyntax) Entry(spec Spec, entry model.WeightedEntry, examples []string) []string {
	weight := fmt.Sprintf("%.*f", spec.Precision, entry.Weight)
	if spec.Granularity == model.Words {
		return []string{
			fmt.Sprintf("        Word::new(\"%s\", %s),", escape(entry.Text), weight),
		}
	}
	return []string{
		fmt.Sprintf("        // Corpus: %.2f%%", entry.Frequency),
		fmt.Sprintf("        %s::new(\"%s\", %s, &[%s]),",
			typeName(spec.Granularity), escape(entry.Text), weight, quoteList(examples)),
	}
}

// Close implements Syntax.
func (RustSyntax) Close(Spec) []string {
	return []string{"    ]", "}"}
}
