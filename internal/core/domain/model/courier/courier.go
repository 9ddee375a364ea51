package courier

import (
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
)

// DefaultPriority is assumed for couriers whose table row carries no priority.
// Lower numbers are preferred, so an unprioritized courier sorts last.
const DefaultPriority = 999

// Courier is one row of the courier table, immutable for the run.
type Courier struct {
	CourierID     string
	ZonesCovered  []string
	AcceptsCOD    bool
	Exclusions    []string
	DailyCapacity float64
	Priority      int
}

// Profile is a Courier prepared for constraint checks: covered zones resolved
// to canonical names, exclusions lowercased, and the id uppercased for
// case-insensitive matching against delivery logs.
type Profile struct {
	CourierID     string
	UpperID       string
	DailyCapacity float64
	Priority      int

	acceptsCOD bool
	zones      map[string]struct{}
	exclusions map[string]struct{}
}

// NewProfile canonicalizes one courier against the zone index. Zone entries
// that resolve to nothing are dropped rather than kept as empty coverage.
func NewProfile(c Courier, zones *zone.Index) Profile {
	p := Profile{
		CourierID:     c.CourierID,
		UpperID:       strings.ToUpper(c.CourierID),
		DailyCapacity: c.DailyCapacity,
		Priority:      c.Priority,
		acceptsCOD:    c.AcceptsCOD,
		zones:         make(map[string]struct{}, len(c.ZonesCovered)),
		exclusions:    make(map[string]struct{}, len(c.Exclusions)),
	}

	for _, z := range c.ZonesCovered {
		if canonical, ok := zones.Canonicalize(z); ok {
			p.zones[canonical] = struct{}{}
		}
	}

	for _, e := range c.Exclusions {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			p.exclusions[e] = struct{}{}
		}
	}

	return p
}

// NewProfiles canonicalizes a whole courier table, preserving its order.
func NewProfiles(couriers []Courier, zones *zone.Index) []Profile {
	profiles := make([]Profile, 0, len(couriers))
	for _, c := range couriers {
		profiles = append(profiles, NewProfile(c, zones))
	}
	return profiles
}

// Covers reports whether the order's canonical city or zone hint is among the
// courier's covered zones. Orders without either never match.
func (p Profile) Covers(o order.CleanOrder) bool {
	if o.City != "" {
		if _, ok := p.zones[o.City]; ok {
			return true
		}
	}
	if o.ZoneHint != "" {
		if _, ok := p.zones[o.ZoneHint]; ok {
			return true
		}
	}
	return false
}

// Eligible reports whether the courier may carry the order at all: COD orders
// need a COD-accepting courier, and the order's product type must not be
// excluded. Capacity is not considered here.
func (p Profile) Eligible(o order.CleanOrder) bool {
	if o.PaymentType == order.PaymentCOD && !p.acceptsCOD {
		return false
	}

	if _, excluded := p.exclusions[strings.ToLower(o.ProductType)]; excluded {
		return false
	}

	return true
}

// Fits reports whether adding weight on top of the current load stays within
// the courier's daily capacity, with the pipeline's floating tolerance.
func (p Profile) Fits(currentLoad, weight float64) bool {
	return currentLoad+weight <= p.DailyCapacity+kernel.WeightEpsilon
}
