// internal/recommend/engine.go
package recommend

import (
	"fmt"

	"github.com/seifbadreldinx/futureintern/internal/common/config"
	"github.com/seifbadreldinx/futureintern/internal/common/errors"
	"github.com/seifbadreldinx/futureintern/internal/matching"
)

// EngineFromConfig builds a matching engine from the service configuration.
// Explicit weights win over the named profile; a bad weight set is fatal
// here, before any ranking pass can see it.
func EngineFromConfig(cfg config.MatchingConfig) (*matching.Engine, error) {
	weights, err := resolveWeights(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := matching.New(
		matching.Strategy(cfg.Strategy),
		weights,
		matching.WithListingSkillsInText(cfg.ListingSkillsInText),
		matching.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, errors.NewInvalidWeightConfigError(err)
	}
	return engine, nil
}

func resolveWeights(cfg config.MatchingConfig) (matching.Weights, error) {
	if len(cfg.Weights) > 0 {
		w := matching.Weights{
			Skills:         cfg.Weights["skills"],
			TextSimilarity: cfg.Weights["text_similarity"],
			Major:          cfg.Weights["major"],
			Location:       cfg.Weights["location"],
			Availability:   cfg.Weights["availability"],
		}
		return w, nil
	}

	switch cfg.WeightProfile {
	case "legacy":
		return matching.LegacyWeights(), nil
	case "default", "":
		return matching.DefaultWeights(), nil
	default:
		return matching.Weights{}, fmt.Errorf("unknown weight profile %q", cfg.WeightProfile)
	}
}
