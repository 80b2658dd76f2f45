// internal/matching/textsim_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSimilarity(t *testing.T) {
	e := newTestEngine(t, StrategyFuzzy)

	t.Run("empty sides score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, e.textSimilarity("", "python backend internship"))
		assert.Equal(t, 0.0, e.textSimilarity("python sql", ""))
		assert.Equal(t, 0.0, e.textSimilarity("!!!", "???"))
	})

	t.Run("identical text is a perfect match", func(t *testing.T) {
		text := "python backend developer internship cairo"
		assert.InDelta(t, 1.0, e.textSimilarity(text, text), 1e-9)
	})

	t.Run("overlap scores between extremes", func(t *testing.T) {
		sim := e.textSimilarity(
			"python sql computer science",
			"backend internship python and sql experience required",
		)
		assert.Greater(t, sim, 0.0)
		assert.Less(t, sim, 1.0)
	})

	t.Run("disjoint text scores near zero", func(t *testing.T) {
		sim := e.textSimilarity("marketing design", "kernel drivers embedded firmware")
		assert.Equal(t, 0.0, sim)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, b := "python react sql computer science", "react internship for python developers"
		first := e.textSimilarity(a, b)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, e.textSimilarity(a, b))
		}
	})
}

func TestJaccardFallback(t *testing.T) {
	// The ranking path falls back to token overlap when the vector space is
	// degenerate; the fallback itself must behave.
	assert.Equal(t, 1.0, jaccard([]string{"python", "sql"}, []string{"sql", "python"}))
	assert.Equal(t, 0.0, jaccard([]string{"python"}, []string{"go"}))
	assert.InDelta(t, 1.0/3.0, jaccard([]string{"python", "sql"}, []string{"python", "go"}), 1e-9)
}

func TestListingTextComposition(t *testing.T) {
	listing := ListingCandidate{
		Title:          "Backend Intern",
		Description:    "Work on APIs",
		Requirements:   "SQL experience",
		RequiredSkills: []string{"python", "django"},
	}

	withSkills := newTestEngine(t, StrategyFuzzy)
	assert.Contains(t, withSkills.listingText(listing), "django")

	e, err := New(StrategyFuzzy, DefaultWeights(), WithListingSkillsInText(false))
	assert.NoError(t, err)
	assert.NotContains(t, e.listingText(listing), "django")
	assert.Contains(t, e.listingText(listing), "Backend Intern")
}
