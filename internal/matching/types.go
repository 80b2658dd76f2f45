// internal/matching/types.go
package matching

// StudentProfile is the student side of a ranking pass. It is built once by
// the ingestion boundary and treated as immutable while ranking.
type StudentProfile struct {
	ID                string   `json:"id"`
	Skills            []string `json:"skills"`
	Major             string   `json:"major"`
	Location          string   `json:"location"`
	AvailabilityHours float64  `json:"availabilityHours"`
}

// ListingCandidate is one internship posting to be scored against a student.
type ListingCandidate struct {
	ID                        string   `json:"id"`
	RequiredSkills            []string `json:"requiredSkills"`
	Major                     string   `json:"major"`
	Location                  string   `json:"location"`
	Title                     string   `json:"title"`
	Description               string   `json:"description"`
	Requirements              string   `json:"requirements"`
	RequiredAvailabilityHours float64  `json:"requiredAvailabilityHours"`
}

// CriterionScore is the per-criterion breakdown of a listing's score. Each
// contribution is already weighted onto the 0-100 scale and rounded to one
// decimal; Total is the rounded sum of the rounded contributions.
type CriterionScore struct {
	Skills         float64 `json:"skills"`
	TextSimilarity float64 `json:"text_similarity"`
	Major          float64 `json:"major"`
	Location       float64 `json:"location"`
	Availability   float64 `json:"availability"`
	Total          float64 `json:"total_score"`
}

// RankedResult pairs a listing with its score and breakdown. A rank call
// returns results sorted by Score descending, stable on ties.
type RankedResult struct {
	ListingID string         `json:"listing_id"`
	Score     float64        `json:"score"`
	Details   CriterionScore `json:"details"`
}

// Filters are hard exclusions applied after scoring but before sorting.
// A listing failing any supplied filter never appears in the results.
type Filters struct {
	Skills       []string `json:"skills,omitempty"`
	Major        string   `json:"major,omitempty"`
	Location     string   `json:"location,omitempty"`
	Availability bool     `json:"availability,omitempty"`
}

// RankOptions carries the optional knobs of a rank call. MinScore is a soft
// threshold applied after sorting; Limit truncates the final sequence
// (zero means no limit).
type RankOptions struct {
	Filters  *Filters
	MinScore *float64
	Limit    int
}
