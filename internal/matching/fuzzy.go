// internal/matching/fuzzy.go
package matching

import (
	"sort"
	"strings"
)

// levenshtein computes the edit distance between two strings using a
// single-row DP table.
func levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, lb+1)
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// similarityRatio is the character-level similarity of two strings in [0,1]:
// 1 - distance/maxLen. Two empty strings are identical.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

// tokenSortRatio compares two strings with their tokens sorted first, making
// the ratio insensitive to word order ("js react" vs "react js").
func tokenSortRatio(a, b string) float64 {
	return similarityRatio(sortedTokens(a), sortedTokens(b))
}

func sortedTokens(s string) string {
	tokens := Tokenize(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
