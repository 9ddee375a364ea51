package order

import "time"

// Canonical payment types. Every input spelling normalizes to one of these.
const (
	PaymentCOD     = "COD"
	PaymentPrepaid = "Prepaid"
)

// Canonical product types. Only the literal "fragile" is a special category;
// everything else is standard.
const (
	ProductFragile  = "fragile"
	ProductStandard = "standard"
)

// RawOrder is an order exactly as it appears in the input snapshot. Every field
// is the original text (missing fields are empty strings); Weight keeps the raw
// spelling so the normalizer owns the coercion and its warning.
type RawOrder struct {
	OrderID     string
	City        string
	ZoneHint    string
	Address     string
	PaymentType string
	ProductType string
	Weight      string
	Deadline    string
}

// CleanOrder is the normalized, post-merge order record. OrderID is in the
// canonical LETTERS-DIGITS form and unique within a clean set. City and
// ZoneHint hold canonical zone names, or "" when the input had none. A nil
// Deadline means none could be parsed.
type CleanOrder struct {
	OrderID     string
	City        string
	ZoneHint    string
	Address     string
	PaymentType string
	ProductType string
	Weight      float64
	Deadline    *time.Time
}
