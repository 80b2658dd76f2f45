// internal/ingest/ingest.go

// Package ingest builds matching engine records from the loosely typed rows
// the account and listing stores keep. Skills live in three historical
// representations (JSON array, comma-separated string, free-text
// requirements); the representation is resolved exactly once here and never
// re-interpreted inside the scoring path.
package ingest

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/seifbadreldinx/futureintern/internal/matching"
)

const (
	defaultStudentAvailability = 40
	defaultListingAvailability = 30
)

// StudentRecord is a raw student row as stored upstream.
type StudentRecord struct {
	ID                string  `json:"id"`
	Skills            string  `json:"skills"`
	Interests         string  `json:"interests"`
	Major             string  `json:"major"`
	Location          string  `json:"location"`
	AvailabilityHours float64 `json:"availabilityHours"`
}

// ListingRecord is a raw internship row as stored upstream.
type ListingRecord struct {
	ID                        string  `json:"id"`
	Title                     string  `json:"title"`
	Description               string  `json:"description"`
	Requirements              string  `json:"requirements"`
	RequiredSkills            string  `json:"requiredSkills"`
	Major                     string  `json:"major"`
	Location                  string  `json:"location"`
	RequiredAvailabilityHours float64 `json:"requiredAvailabilityHours"`
}

// Student builds an immutable StudentProfile from a raw row. Skills and
// interests are merged into one deduplicated, normalized capability set.
func Student(rec StudentRecord) matching.StudentProfile {
	hours := rec.AvailabilityHours
	if hours <= 0 {
		hours = defaultStudentAvailability
	}
	return matching.StudentProfile{
		ID:                rec.ID,
		Skills:            mergeSkillSets(parseSkillField(rec.Skills), parseSkillField(rec.Interests)),
		Major:             rec.Major,
		Location:          rec.Location,
		AvailabilityHours: hours,
	}
}

// Listing builds a ListingCandidate from a raw row. When the structured
// skills field is absent, the free-text requirements are split as a
// comma-separated fallback.
func Listing(rec ListingRecord) matching.ListingCandidate {
	skills := parseSkillField(rec.RequiredSkills)
	if len(skills) == 0 && rec.Requirements != "" {
		skills = splitCommaList(rec.Requirements)
	}
	hours := rec.RequiredAvailabilityHours
	if hours <= 0 {
		hours = defaultListingAvailability
	}
	return matching.ListingCandidate{
		ID:                        rec.ID,
		RequiredSkills:            skills,
		Major:                     rec.Major,
		Location:                  rec.Location,
		Title:                     rec.Title,
		Description:               rec.Description,
		Requirements:              rec.Requirements,
		RequiredAvailabilityHours: hours,
	}
}

// parseSkillField resolves the tagged representation of a skills payload:
// a JSON array of strings, or a comma-separated string. Malformed payloads
// degrade to the comma split rather than erroring.
func parseSkillField(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		if parsed := gjson.Parse(raw); parsed.IsArray() {
			var skills []string
			parsed.ForEach(func(_, value gjson.Result) bool {
				if s := strings.TrimSpace(value.String()); s != "" {
					skills = append(skills, s)
				}
				return true
			})
			return skills
		}
	}
	return splitCommaList(raw)
}

func splitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// mergeSkillSets deduplicates post-normalization and returns a sorted set so
// profile construction is deterministic regardless of source ordering.
func mergeSkillSets(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, list := range lists {
		for _, s := range list {
			n := matching.Normalize(s)
			if n == "" {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			merged = append(merged, n)
		}
	}
	sort.Strings(merged)
	return merged
}
