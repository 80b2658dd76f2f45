// internal/matching/textsim.go
package matching

import (
	"math"
	"strings"
)

// textSimilarity scores the overlap between the composed student and listing
// text blobs in [0,1] using cosine similarity over unigram+bigram term
// frequencies. A degenerate vector space falls back to Jaccard token overlap
// so a single listing can never abort a ranking pass.
func (e *Engine) textSimilarity(studentText, listingText string) float64 {
	a := Tokenize(Normalize(studentText))
	b := Tokenize(Normalize(listingText))
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	va := termFrequencies(a)
	vb := termFrequencies(b)
	if cos, ok := cosine(va, vb); ok {
		return cos
	}
	return jaccard(a, b)
}

// studentText composes the student-side document: skills plus major.
func studentText(student StudentProfile) string {
	parts := make([]string, 0, len(student.Skills)+1)
	parts = append(parts, student.Skills...)
	if student.Major != "" {
		parts = append(parts, student.Major)
	}
	return strings.Join(parts, " ")
}

// listingText composes the listing-side document. Folding the required
// skills back in softly boosts skill overlap on top of the skill criterion;
// it mirrors the legacy behaviour and is switchable at construction.
func (e *Engine) listingText(listing ListingCandidate) string {
	parts := []string{listing.Title, listing.Description, listing.Requirements}
	if e.skillsInListingText {
		parts = append(parts, strings.Join(listing.RequiredSkills, " "))
	}
	return strings.Join(parts, " ")
}

// termFrequencies builds a unigram+bigram term-frequency vector.
func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, 2*len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	for i := 0; i+1 < len(tokens); i++ {
		tf[tokens[i]+" "+tokens[i+1]]++
	}
	return tf
}

// cosine returns the cosine similarity of two term-frequency vectors. The
// second return is false when either vector has zero norm.
func cosine(a, b map[string]float64) (float64, bool) {
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// jaccard is the token-overlap ratio |intersection| / |union| of the two
// documents' token sets.
func jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
