// internal/matching/skills_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, strategy Strategy) *Engine {
	t.Helper()
	weights := DefaultWeights()
	if strategy == StrategySimple {
		weights = LegacyWeights()
	}
	e, err := New(strategy, weights)
	require.NoError(t, err)
	return e
}

func TestMatchSkills_Fuzzy(t *testing.T) {
	e := newTestEngine(t, StrategyFuzzy)

	tests := []struct {
		name     string
		student  []string
		required []string
		expected float64
	}{
		{"empty required", []string{"python"}, nil, 0},
		{"empty student", nil, []string{"python"}, 0},
		{"both empty", nil, nil, 0},
		{"exact full coverage", []string{"python", "react", "sql"}, []string{"python", "react"}, 1.0},
		{"exact half coverage", []string{"java"}, []string{"python", "java"}, 0.5},
		{"case and noise insensitive", []string{"Python!"}, []string{"PYTHON"}, 1.0},
		{"substring counts as full", []string{"react native"}, []string{"react"}, 1.0},
		{"fuzzy counts as partial", []string{"javascript"}, []string{"java script"}, 0.7},
		{"no overlap", []string{"cooking"}, []string{"python", "sql"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, e.matchSkills(tt.student, tt.required), 1e-9)
		})
	}
}

func TestMatchSkills_FuzzyClampedAtOne(t *testing.T) {
	e := newTestEngine(t, StrategyFuzzy)

	// Overlapping student skills can match the same requirement several
	// ways; the aggregate must still cap at full credit.
	score := e.matchSkills([]string{"python", "python3", "python scripting"}, []string{"python"})
	assert.Equal(t, 1.0, score)
}

func TestMatchSkills_Simple(t *testing.T) {
	e := newTestEngine(t, StrategySimple)

	// The simple matcher only credits exact post-normalization equality.
	assert.Equal(t, 0.5, e.matchSkills([]string{"java"}, []string{"python", "java"}))
	assert.Equal(t, 0.0, e.matchSkills([]string{"react native"}, []string{"react"}))
	assert.Equal(t, 0.0, e.matchSkills([]string{"python"}, nil))
}

func TestMatchSkills_Deterministic(t *testing.T) {
	e := newTestEngine(t, StrategyFuzzy)

	student := []string{"go", "python", "reactjs", "postgres"}
	required := []string{"react", "python", "sql"}
	first := e.matchSkills(student, required)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, e.matchSkills(student, required))
	}
}
