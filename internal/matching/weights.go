// internal/matching/weights.go
package matching

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidWeights = errors.New("INVALID_WEIGHTS")

// Weights assigns each criterion its fractional share of the 0-100 total.
// A weight set is fixed at engine construction and must sum to 1.0.
type Weights struct {
	Skills         float64 `json:"skills" mapstructure:"skills"`
	TextSimilarity float64 `json:"text_similarity" mapstructure:"text_similarity"`
	Major          float64 `json:"major" mapstructure:"major"`
	Location       float64 `json:"location" mapstructure:"location"`
	Availability   float64 `json:"availability" mapstructure:"availability"`
}

// DefaultWeights is the fuzzy-strategy profile with a text-similarity term.
func DefaultWeights() Weights {
	return Weights{
		Skills:         0.35,
		TextSimilarity: 0.25,
		Major:          0.20,
		Location:       0.10,
		Availability:   0.10,
	}
}

// LegacyWeights is the original simple profile without text similarity.
func LegacyWeights() Weights {
	return Weights{
		Skills:       0.40,
		Major:        0.30,
		Location:     0.15,
		Availability: 0.15,
	}
}

// Validate rejects negative weights and weight sets that do not sum to 1.0
// within floating-point tolerance.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skills":          w.Skills,
		"text_similarity": w.TextSimilarity,
		"major":           w.Major,
		"location":        w.Location,
		"availability":    w.Availability,
	} {
		if v < 0 {
			return fmt.Errorf("%w: weight %q is negative (%v)", ErrInvalidWeights, name, v)
		}
	}
	sum := w.Skills + w.TextSimilarity + w.Major + w.Location + w.Availability
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%w: weights sum to %v, want 1.0", ErrInvalidWeights, sum)
	}
	return nil
}
