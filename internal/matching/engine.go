// internal/matching/engine.go
package matching

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Strategy selects the matcher set used by an engine. The simple strategy is
// the legacy exact-match scorer; the fuzzy strategy adds containment, fuzzy
// ratios and text similarity.
type Strategy string

const (
	StrategySimple Strategy = "simple"
	StrategyFuzzy  Strategy = "fuzzy"
)

const defaultRankWorkers = 4

// Engine scores and ranks listing candidates against a student profile.
// It holds no mutable state: the weight configuration is fixed at
// construction, so scores within a ranking pass are reproducible. Swapping
// weights means constructing a new engine.
type Engine struct {
	strategy            Strategy
	weights             Weights
	skillsInListingText bool
	workers             int
}

// Option tunes engine construction.
type Option func(*Engine)

// WithListingSkillsInText controls whether the listing's required skills are
// folded into the text-similarity document (see Engine.listingText).
func WithListingSkillsInText(include bool) Option {
	return func(e *Engine) { e.skillsInListingText = include }
}

// WithWorkers sets the number of goroutines a rank call scores listings
// with. Values below 1 fall back to sequential scoring.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// New constructs an engine. An invalid weight configuration is the one fatal
// error in this package and is reported here, never mid-ranking-pass.
func New(strategy Strategy, weights Weights, opts ...Option) (*Engine, error) {
	switch strategy {
	case StrategySimple, StrategyFuzzy:
	default:
		return nil, fmt.Errorf("unknown matching strategy %q", strategy)
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		strategy:            strategy,
		weights:             weights,
		skillsInListingText: true,
		workers:             defaultRankWorkers,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Strategy returns the matcher set the engine was constructed with.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Weights returns the engine's weight configuration.
func (e *Engine) Weights() Weights { return e.weights }

// Score computes the weighted per-criterion breakdown for one listing.
// Contributions are rounded to one decimal individually because the
// breakdown is user-visible; the total is the rounded sum of the rounded
// parts.
func (e *Engine) Score(student StudentProfile, listing ListingCandidate) CriterionScore {
	var details CriterionScore
	details.Skills = contribution(e.matchSkills(student.Skills, listing.RequiredSkills), e.weights.Skills)
	if e.weights.TextSimilarity > 0 {
		details.TextSimilarity = contribution(
			e.textSimilarity(studentText(student), e.listingText(listing)),
			e.weights.TextSimilarity,
		)
	}
	details.Major = contribution(e.matchMajor(student.Major, listing.Major), e.weights.Major)
	details.Location = contribution(e.matchLocation(student.Location, listing.Location), e.weights.Location)
	details.Availability = contribution(
		matchAvailability(student.AvailabilityHours, listing.RequiredAvailabilityHours),
		e.weights.Availability,
	)
	details.Total = round1(details.Skills + details.TextSimilarity +
		details.Major + details.Location + details.Availability)
	return details
}

// Rank scores every candidate, applies hard filters, sorts descending by
// total score (stable on ties), then applies the optional MinScore and Limit.
// Listings that cannot be scored at all are returned in the skipped list and
// never abort the pass.
func (e *Engine) Rank(student StudentProfile, listings []ListingCandidate, opts RankOptions) ([]RankedResult, []string) {
	scorable := make([]ListingCandidate, 0, len(listings))
	var skipped []string
	for i, listing := range listings {
		if listing.ID == "" {
			skipped = append(skipped, fmt.Sprintf("listing[%d]", i))
			continue
		}
		scorable = append(scorable, listing)
	}

	scores := e.scoreAll(student, scorable)

	results := make([]RankedResult, 0, len(scorable))
	for i, listing := range scorable {
		if opts.Filters != nil && !passesFilters(student, listing, opts.Filters) {
			continue
		}
		results = append(results, RankedResult{
			ListingID: listing.ID,
			Score:     scores[i].Total,
			Details:   scores[i],
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.MinScore != nil {
		kept := results[:0]
		for _, r := range results {
			if r.Score >= *opts.MinScore {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results, skipped
}

// scoreAll computes all scores, fanning out across a bounded worker pool.
// Each listing's score is independent, so the only synchronization is the
// final join; results land at their input index to keep the pass
// deterministic.
func (e *Engine) scoreAll(student StudentProfile, listings []ListingCandidate) []CriterionScore {
	scores := make([]CriterionScore, len(listings))
	workers := e.workers
	if workers > len(listings) {
		workers = len(listings)
	}
	if workers <= 1 {
		for i, listing := range listings {
			scores[i] = e.Score(student, listing)
		}
		return scores
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				scores[i] = e.Score(student, listings[i])
			}
		}()
	}
	for i := range listings {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return scores
}

// passesFilters applies the hard exclusion rules. Filters compare exactly
// (post-normalization), not fuzzily: they are gates, not score penalties.
func passesFilters(student StudentProfile, listing ListingCandidate, f *Filters) bool {
	if len(f.Skills) > 0 {
		required := normalizeSkillSet(listing.RequiredSkills)
		found := false
		for _, s := range f.Skills {
			if _, ok := required[Normalize(s)]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Major != "" && Normalize(f.Major) != Normalize(listing.Major) {
		return false
	}
	if f.Location != "" && Normalize(f.Location) != Normalize(listing.Location) {
		return false
	}
	if f.Availability && student.AvailabilityHours < listing.RequiredAvailabilityHours {
		return false
	}
	return true
}

func contribution(subScore, weight float64) float64 {
	return round1(subScore * weight * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
