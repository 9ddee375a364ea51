package kernel

import (
	"regexp"
	"strings"
)

// WeightEpsilon is the tolerance used for every floating-point capacity and
// weight comparison in the pipeline.
const WeightEpsilon = 1e-9

var (
	nonAlnumRe     = regexp.MustCompile(`[^a-z0-9]+`)
	upperEdgeLeft  = regexp.MustCompile(`^[^A-Z0-9]+`)
	upperEdgeRight = regexp.MustCompile(`[^A-Z0-9]+$`)
)

// TokenKey reduces s to its comparison key: lowercased with every character
// outside [a-z0-9] removed. It is the key used for all zone lookups.
func TokenKey(s string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(s), "")
}

// AddressKey reduces an address to its comparison form: lowercased, with every
// non-alphanumeric run collapsed to a single space and the edges trimmed.
func AddressKey(s string) string {
	return strings.TrimSpace(nonAlnumRe.ReplaceAllString(strings.ToLower(s), " "))
}

// TrimNonAlnumEdges strips leading and trailing runs of characters outside
// [A-Z0-9] from an already-uppercased string.
func TrimNonAlnumEdges(s string) string {
	s = upperEdgeLeft.ReplaceAllString(s, "")
	return upperEdgeRight.ReplaceAllString(s, "")
}
