// Package normalize maps frequency ranks to bounded familiarity weights.
package normalize

import (
	"errors"
	"fmt"
	"math"

	"github.com/verte-zerg/freqgen/internal/model"
)

// Weight bounds of the normalized range.
const (
	MaxWeight = 1.00
	MinWeight = 0.70
)

// ErrInvalidConfig marks precondition violations that must abort a run
// before anything is emitted.
var ErrInvalidConfig = errors.New("invalid pipeline configuration")

// Normalize selects the top min(count, len) entries of a rank-ordered table
// and attaches a weight to each: 1.00 for the first rank, 0.70 for the last
// of the selected window, linear in between. Weights are rounded to the
// given number of decimal places. Input order is rank order; the table is
// never re-sorted.
func Normalize(entries []model.RankedEntry, count, precision int) ([]model.WeightedEntry, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be > 0, got %d", ErrInvalidConfig, count)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: frequency table is empty", ErrInvalidConfig)
	}
	if precision < 0 {
		return nil, fmt.Errorf("%w: precision must be >= 0, got %d", ErrInvalidConfig, precision)
	}

	selected := entries
	if count < len(entries) {
		selected = entries[:count]
	}

	out := make([]model.WeightedEntry, 0, len(selected))
	span := float64(len(selected) - 1)
	for i, entry := range selected {
		weight := MaxWeight
		if span > 0 {
			weight = MaxWeight - (float64(i)/span)*(MaxWeight-MinWeight)
		}
		out = append(out, model.WeightedEntry{
			Text:      entry.Text,
			Frequency: entry.Frequency,
			Weight:    round(weight, precision),
		})
	}
	return out, nil
}

func round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}
