package zone

import (
	"regexp"
	"strings"

	"logistics/internal/core/domain/model/kernel"
)

// Entry is one row of the raw-to-canonical zone table. Raw values need not be
// unique; many raws may map to one canonical name.
type Entry struct {
	Raw       string
	Canonical string
}

// octoberCanonical is the fixed target of the "6 oct" spelling tolerance.
const octoberCanonical = "6th of October"

// sixOctRe matches "6" optionally followed by whitespace then "oct" as a whole
// word, covering shorthands like "6 Oct" and "6oct." that survive no other rule.
var sixOctRe = regexp.MustCompile(`(?i)\b6\s*oct\b`)

// Index holds the lookup structures derived from the zone table: the token of
// every raw and canonical value mapped to its canonical name, plus the tokens
// of the canonical names themselves. Built once per run, read-only afterwards.
//
// Both lookup maps keep a first-insertion key order so that substring and
// fuzzy scans visit candidates deterministically.
type Index struct {
	canonByRawToken map[string]string
	rawTokens       []string

	canonByOwnToken map[string]string
	canonTokens     []string
}

// NewIndex builds an Index from the zone table. Every (raw, canonical) pair
// maps its raw spelling to the canonical name; each canonical name
// additionally maps to itself unless
// its spelling is already present as a raw key, so canonical names always
// resolve to themselves.
func NewIndex(entries []Entry) *Index {
	canonByRaw := make(map[string]string, len(entries))
	rawOrder := make([]string, 0, len(entries))
	canonOrder := make([]string, 0, len(entries))

	for _, e := range entries {
		if _, seen := canonByRaw[e.Raw]; !seen {
			rawOrder = append(rawOrder, e.Raw)
		}
		canonByRaw[e.Raw] = e.Canonical
		canonOrder = append(canonOrder, e.Canonical)
	}

	// Self-mappings for canonical names, after all raw rows.
	for _, canonical := range canonOrder {
		if _, seen := canonByRaw[canonical]; !seen {
			canonByRaw[canonical] = canonical
			rawOrder = append(rawOrder, canonical)
		}
	}

	ix := &Index{
		canonByRawToken: make(map[string]string, len(rawOrder)),
		canonByOwnToken: make(map[string]string, len(canonOrder)),
	}

	for _, raw := range rawOrder {
		token := kernel.TokenKey(raw)
		if _, seen := ix.canonByRawToken[token]; !seen {
			ix.rawTokens = append(ix.rawTokens, token)
		}
		ix.canonByRawToken[token] = canonByRaw[raw]
	}

	for _, canonical := range canonOrder {
		token := kernel.TokenKey(canonical)
		if _, seen := ix.canonByOwnToken[token]; !seen {
			ix.canonTokens = append(ix.canonTokens, token)
		}
		ix.canonByOwnToken[token] = canonical
	}

	return ix
}

// Canonicalize resolves an arbitrary zone term to its canonical name.
// Resolution order, first match wins:
//
//  1. the term contains the token of a known canonical name as a substring
//     (handles compound inputs like "6 October- El Montazah");
//  2. exact token match against the raw index;
//  3. the "6 oct" spelling tolerance;
//  4. fuzzy fallback against every raw token, accepted at ratio ≥ 0.84.
//
// An unresolved term is passed through trimmed, not nulled. Empty input
// returns ok=false.
func (ix *Index) Canonicalize(term string) (string, bool) {
	if strings.TrimSpace(term) == "" {
		return "", false
	}

	token := kernel.TokenKey(term)

	for _, canonToken := range ix.canonTokens {
		if strings.Contains(token, canonToken) {
			return ix.canonByOwnToken[canonToken], true
		}
	}

	if canonical, ok := ix.canonByRawToken[token]; ok {
		return canonical, true
	}

	if sixOctRe.MatchString(term) {
		return octoberCanonical, true
	}

	best, bestRatio := "", 0.0
	for _, rawToken := range ix.rawTokens {
		if r := kernel.SimilarityRatio(token, rawToken); r > bestRatio {
			bestRatio = r
			best = ix.canonByRawToken[rawToken]
		}
	}
	if bestRatio >= 0.84 {
		return best, true
	}

	return strings.TrimSpace(term), true
}
