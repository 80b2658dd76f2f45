// internal/matching/skills.go
package matching

import "strings"

// Credit given to a fuzzy skill match relative to an exact one.
const partialSkillCredit = 0.7

// Minimum token-sort similarity for a required skill to count as a fuzzy hit.
const skillFuzzyThreshold = 0.75

// matchSkills scores the overlap between a student's skills and a listing's
// required skills in [0,1]. An empty side means no claim of a match can be
// made and scores 0.
func (e *Engine) matchSkills(studentSkills, requiredSkills []string) float64 {
	student := normalizeSkillSet(studentSkills)
	required := normalizeSkillList(requiredSkills)
	if len(student) == 0 || len(required) == 0 {
		return 0
	}

	if e.strategy == StrategySimple {
		matched := 0
		for _, req := range required {
			if _, ok := student[req]; ok {
				matched++
			}
		}
		return float64(matched) / float64(len(required))
	}

	var full, partial int
	for _, req := range required {
		switch bestSkillMatch(req, student) {
		case skillMatchFull:
			full++
		case skillMatchPartial:
			partial++
		}
	}

	score := (float64(full) + partialSkillCredit*float64(partial)) / float64(len(required))
	if score > 1.0 {
		// A required skill can match several ways; never overrun full credit.
		score = 1.0
	}
	return score
}

type skillMatchQuality int

const (
	skillMatchNone skillMatchQuality = iota
	skillMatchPartial
	skillMatchFull
)

// bestSkillMatch returns the best quality found for one required skill
// against the whole student set: exact equality and substring containment
// both count as full, a fuzzy hit above threshold counts as partial.
func bestSkillMatch(required string, student map[string]struct{}) skillMatchQuality {
	if _, ok := student[required]; ok {
		return skillMatchFull
	}
	best := skillMatchNone
	for skill := range student {
		if strings.Contains(skill, required) || strings.Contains(required, skill) {
			return skillMatchFull
		}
		if best == skillMatchNone && tokenSortRatio(skill, required) >= skillFuzzyThreshold {
			best = skillMatchPartial
		}
	}
	return best
}

func normalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if n := Normalize(s); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func normalizeSkillList(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
