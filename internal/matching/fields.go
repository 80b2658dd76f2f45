// internal/matching/fields.go
package matching

import "strings"

// matchMajor compares the student and listing majors in [0,1]. An
// unspecified major claims no match, so empty sides score 0. Substring
// containment is a stronger signal for majors ("CS" inside "Computer
// Science" style pairs) than raw character similarity.
func (e *Engine) matchMajor(studentMajor, listingMajor string) float64 {
	a, b := Normalize(studentMajor), Normalize(listingMajor)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if e.strategy == StrategySimple {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}
	switch ratio := similarityRatio(a, b); {
	case ratio >= 0.9:
		return 0.9
	case ratio >= 0.75:
		return 0.7
	case ratio >= 0.6:
		return 0.5
	default:
		return 0
	}
}

// matchLocation compares locations in [0,1]. Location is commonly omitted,
// so an empty side is "don't care" and scores neutral 0.5; remote listings
// match any student location.
func (e *Engine) matchLocation(studentLocation, listingLocation string) float64 {
	a, b := Normalize(studentLocation), Normalize(listingLocation)
	if a == "" || b == "" {
		return 0.5
	}
	if a == b {
		return 1.0
	}
	if e.strategy == StrategySimple {
		return 0
	}
	if strings.Contains(a, "remote") || strings.Contains(b, "remote") {
		return 0.9
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}
	switch ratio := similarityRatio(a, b); {
	case ratio >= 0.9:
		return 0.9
	case ratio >= 0.75:
		return 0.7
	case ratio >= 0.6:
		return 0.5
	default:
		return 0.3
	}
}

// matchAvailability compares hours the student can offer against hours the
// listing requires. A listing requiring zero hours is neutral rather than a
// division by zero.
func matchAvailability(studentHours, requiredHours float64) float64 {
	if requiredHours <= 0 {
		return 0.5
	}
	if studentHours >= requiredHours {
		return 1.0
	}
	if studentHours <= 0 {
		return 0
	}
	return studentHours / requiredHours
}
