// internal/matching/fields_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchMajor_Fuzzy(t *testing.T) {
	e := newTestEngine(t, StrategyFuzzy)

	tests := []struct {
		name     string
		student  string
		listing  string
		expected float64
	}{
		{"student empty", "", "Computer Science", 0},
		{"listing empty", "Computer Science", "", 0},
		{"exact", "Computer Science", "computer science", 1.0},
		{"containment", "Engineering", "Software Engineering", 0.9},
		{"near identical", "computer sciense", "computer science", 0.9},
		{"close but not exact", "computer sceince", "computer science", 0.7},
		{"unrelated", "Finance", "Computer Science", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, e.matchMajor(tt.student, tt.listing), 1e-9)
		})
	}
}

func TestMatchLocation_Fuzzy(t *testing.T) {
	e := newTestEngine(t, StrategyFuzzy)

	tests := []struct {
		name     string
		student  string
		listing  string
		expected float64
	}{
		{"student empty is dont-care", "", "Cairo", 0.5},
		{"listing empty is dont-care", "Cairo", "", 0.5},
		{"exact", "Cairo", "cairo", 1.0},
		{"remote listing matches anywhere", "Alexandria", "Remote", 0.9},
		{"remote student side", "remote only", "Cairo", 0.9},
		{"containment", "Cairo", "Cairo, Egypt", 0.8},
		{"typo", "cairo", "ciiro", 0.7},
		{"unrelated keeps floor", "cairo", "giza", 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, e.matchLocation(tt.student, tt.listing), 1e-9)
		})
	}
}

func TestMatchFields_Simple(t *testing.T) {
	e := newTestEngine(t, StrategySimple)

	assert.Equal(t, 1.0, e.matchMajor("CS", "cs"))
	assert.Equal(t, 0.0, e.matchMajor("Engineering", "Software Engineering"))
	assert.Equal(t, 1.0, e.matchLocation("Cairo", "cairo"))
	assert.Equal(t, 0.0, e.matchLocation("Cairo", "Cairo, Egypt"))
	assert.Equal(t, 0.5, e.matchLocation("", "Cairo"))
}

func TestMatchAvailability(t *testing.T) {
	tests := []struct {
		name     string
		student  float64
		required float64
		expected float64
	}{
		{"meets requirement", 40, 30, 1.0},
		{"exactly meets", 30, 30, 1.0},
		{"partial", 15, 30, 0.5},
		{"zero required is neutral", 40, 0, 0.5},
		{"negative required is neutral", 40, -5, 0.5},
		{"zero student", 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, matchAvailability(tt.student, tt.required), 1e-9)
		})
	}
}
