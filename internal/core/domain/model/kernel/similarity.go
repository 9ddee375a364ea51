package kernel

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// SimilarityRatio returns the ratio of matching subsequences between a and b in
// the range [0, 1], computed per character with difflib's SequenceMatcher.
// Two empty strings are fully similar.
//
// The pipeline's resolution thresholds (0.84 for zone terms, 0.85 for
// addresses) are calibrated against this exact measure; do not swap it for a
// plain edit distance.
func SimilarityRatio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	return strings.Split(s, "")
}
