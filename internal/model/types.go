// Package model defines shared data structures.
package model

import "time"

// Granularity identifies a pipeline unit type.
type Granularity string

// Supported granularities.
const (
	Words    Granularity = "words"
	Bigrams  Granularity = "bigrams"
	Trigrams Granularity = "trigrams"
)

// RankedEntry is one unit of a rank-ordered frequency table. Frequency is an
// opaque corpus count or percentage used only for attribution comments.
type RankedEntry struct {
	Text      string
	Frequency float64
}

// WeightedEntry is a RankedEntry with its normalized weight attached.
type WeightedEntry struct {
	Text      string
	Frequency float64
	Weight    float64
}

// ExampleSet maps unit text to its curated example words, in emission order.
type ExampleSet map[string][]string

// Table is one language's frequency table plus metadata and examples.
type Table struct {
	Lang     string
	Language string
	Source   string
	Entries  []RankedEntry
	Examples ExampleSet
}

// ValidationFailure records one example that does not contain its unit.
type ValidationFailure struct {
	Pattern string
	Example string
}

// Report collects the non-fatal issues of one per-language pipeline run.
type Report struct {
	Lang            string
	Granularity     Granularity
	Selected        int
	FirstWeight     float64
	LastWeight      float64
	TopUnits        []string
	Failures        []ValidationFailure
	MissingExamples []string
}

// Valid reports whether every example passed the containment check.
func (r Report) Valid() bool {
	return len(r.Failures) == 0
}

// RunRecord summarizes a completed generation run for the ledger.
type RunRecord struct {
	ID          int64
	RanAt       time.Time
	Lang        string
	Granularity string
	Count       int
	Syntax      string
	Valid       bool
	Warnings    int
	Missing     int
	OutputBytes int
}
