package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
)

// idShapeRe matches LETTERS [separator] DIGITS, where the separator is any run
// of whitespace, hyphens, dots and underscores, or nothing at all.
var idShapeRe = regexp.MustCompile(`^([A-Z]+)[\s\-._]*([0-9]+)$`)

// codSpellings are the input spellings that normalize to PaymentCOD.
var codSpellings = map[string]struct{}{
	"cod":              {},
	"cash on delivery": {},
	"c.o.d":            {},
	"cash":             {},
}

// NormalizeOrderID rewrites an order id into its canonical form: trimmed,
// uppercased, non-alphanumeric edges stripped, and LETTERS/DIGITS shapes
// rewritten as LETTERS-DIGITS. Ids of any other shape are left as-is.
// This canonical id is the deduplication key.
func NormalizeOrderID(s string) string {
	s = kernel.TrimNonAlnumEdges(strings.ToUpper(strings.TrimSpace(s)))

	if m := idShapeRe.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2]
	}

	return s
}

// NormalizePaymentType maps the recognized cash-on-delivery spellings to
// PaymentCOD; everything else, including empty and unrecognized input,
// defaults to PaymentPrepaid.
func NormalizePaymentType(s string) string {
	if _, ok := codSpellings[strings.ToLower(strings.TrimSpace(s))]; ok {
		return PaymentCOD
	}
	return PaymentPrepaid
}

// NormalizeProductType maps the literal "fragile" (any case) to ProductFragile
// and every other input to ProductStandard.
func NormalizeProductType(s string) string {
	if strings.ToLower(strings.TrimSpace(s)) == ProductFragile {
		return ProductFragile
	}
	return ProductStandard
}

// Normalizer normalizes raw order fields against a zone index.
type Normalizer struct {
	zones *zone.Index
}

// NewNormalizer creates a Normalizer resolving city and zone hints through the
// given index.
func NewNormalizer(zones *zone.Index) Normalizer {
	return Normalizer{zones: zones}
}

// NormalizeOrder produces the CleanOrder for one raw record plus the warnings
// it raised. Unparseable weights coerce to 0, unparseable deadlines drop to
// nil; both are reported, tagged with the canonical order id. Empty city or
// zone hints stay empty without a warning.
func (n Normalizer) NormalizeOrder(raw RawOrder) (CleanOrder, []string) {
	var warnings []string

	id := NormalizeOrderID(raw.OrderID)

	clean := CleanOrder{
		OrderID:     id,
		Address:     strings.TrimSpace(raw.Address),
		PaymentType: NormalizePaymentType(raw.PaymentType),
		ProductType: NormalizeProductType(raw.ProductType),
	}

	if city, ok := n.zones.Canonicalize(raw.City); ok {
		clean.City = city
	}
	if hint, ok := n.zones.Canonicalize(raw.ZoneHint); ok {
		clean.ZoneHint = hint
	}

	clean.Weight, warnings = normalizeWeight(id, raw.Weight, warnings)

	if deadline, ok := kernel.ParseTimestamp(raw.Deadline); ok {
		clean.Deadline = &deadline
	} else {
		warnings = append(warnings, fmt.Sprintf("%s: invalid deadline; dropped", id))
	}

	return clean, warnings
}

// normalizeWeight coerces a raw weight to a non-negative float. Missing weights
// are 0 without a warning; unparseable or negative ones coerce to 0 with one.
func normalizeWeight(id, raw string, warnings []string) (float64, []string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, warnings
	}

	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || w < 0 {
		return 0, append(warnings, fmt.Sprintf("%s: invalid weight; coerced to 0", id))
	}

	return w, warnings
}
