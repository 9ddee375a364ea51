package services

import (
	"slices"
	"sort"
	"strings"
	"time"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
)

// LogEntry is one parsed row of the actual-delivery log, fields still as plain
// text. Duplicate order ids across entries are legal input; the reconciler
// detects them instead of rejecting them.
type LogEntry struct {
	OrderID     string
	CourierID   string
	DeliveredAt string
}

// Report groups the delivery discrepancies by category. Each list is
// deduplicated and lexically sorted; Missing and Unexpected are disjoint by
// construction.
type Report struct {
	Missing            []string
	Unexpected         []string
	Duplicate          []string
	Late               []string
	Misassigned        []string
	OverloadedCouriers []string
}

// DeliveryReconciler audits an assignment plan against the actual-delivery log.
type DeliveryReconciler struct{}

// NewDeliveryReconciler creates a new DeliveryReconciler.
func NewDeliveryReconciler() DeliveryReconciler {
	return DeliveryReconciler{}
}

// collapsedEntry is one log entry after id/courier normalization.
type collapsedEntry struct {
	orderID      string
	upperCourier string
	deliveredAt  *time.Time
}

// Reconcile classifies every discrepancy between the plan, the clean orders,
// and the delivery log:
//
//   - missing: planned orders absent from the log;
//   - unexpected: logged orders absent from the clean set;
//   - duplicate: orders logged more than once;
//   - late: orders delivered strictly after their deadline;
//   - misassigned: orders delivered by an infeasible courier, or by a feasible
//     one that differs from the plan when the plan was uniquely determined;
//   - overloadedCouriers: couriers whose actually-delivered weight exceeds
//     their daily capacity.
//
// When an order is logged more than once, the entry with the earliest known
// delivery timestamp stands in as the actual record for lateness and weight.
// Courier ids are matched case-insensitively by their uppercased form.
func (r DeliveryReconciler) Reconcile(
	orders []order.CleanOrder,
	plan Plan,
	entries []LogEntry,
	couriers []courier.Courier,
	zones *zone.Index,
) Report {
	ordersByID := make(map[string]order.CleanOrder, len(orders))
	for _, o := range orders {
		ordersByID[o.OrderID] = o
	}

	planned := make(map[string]string, len(plan.Assignments))
	for _, a := range plan.Assignments {
		planned[a.OrderID] = a.CourierID
	}

	profiles := courier.NewProfiles(couriers, zones)
	profileByUpper := make(map[string]courier.Profile, len(profiles))
	for _, p := range profiles {
		profileByUpper[p.UpperID] = p
	}

	// Feasibility ignores capacity on purpose: it judges whether a courier
	// could ever have carried the order, not whether the plan had room.
	feasible := make(map[string][]string, len(orders))
	for _, o := range orders {
		var ids []string
		for _, p := range profiles {
			if p.Covers(o) && p.Eligible(o) {
				ids = append(ids, p.CourierID)
			}
		}
		sort.Strings(ids)
		feasible[o.OrderID] = ids
	}

	seen := make(map[string]int, len(entries))
	actual := make(map[string]collapsedEntry, len(entries))
	for _, e := range entries {
		entry := collapsedEntry{
			orderID:      order.NormalizeOrderID(e.OrderID),
			upperCourier: strings.ToUpper(strings.TrimSpace(e.CourierID)),
		}
		if ts, ok := kernel.ParseTimestamp(e.DeliveredAt); ok {
			entry.deliveredAt = &ts
		}

		seen[entry.orderID]++

		cur, exists := actual[entry.orderID]
		if !exists || (entry.deliveredAt != nil && cur.deliveredAt != nil && entry.deliveredAt.Before(*cur.deliveredAt)) {
			actual[entry.orderID] = entry
		}
	}

	report := Report{
		Missing:            []string{},
		Unexpected:         []string{},
		Duplicate:          []string{},
		Late:               []string{},
		Misassigned:        []string{},
		OverloadedCouriers: []string{},
	}

	for oid := range planned {
		if _, logged := actual[oid]; !logged {
			report.Missing = append(report.Missing, oid)
		}
	}

	for oid := range actual {
		if _, known := ordersByID[oid]; !known {
			report.Unexpected = append(report.Unexpected, oid)
		}
	}

	for oid, count := range seen {
		if count > 1 {
			report.Duplicate = append(report.Duplicate, oid)
		}
	}

	for oid, entry := range actual {
		o, known := ordersByID[oid]
		if !known || o.Deadline == nil || entry.deliveredAt == nil {
			continue
		}
		if entry.deliveredAt.After(*o.Deadline) {
			report.Late = append(report.Late, oid)
		}
	}

	for oid, entry := range actual {
		if _, known := ordersByID[oid]; !known {
			continue
		}
		plannedID, wasPlanned := planned[oid]
		if !wasPlanned {
			continue
		}

		feas := feasible[oid]
		logged, loggedKnown := profileByUpper[entry.upperCourier]
		loggedFeasible := loggedKnown && slices.Contains(feas, logged.CourierID)

		if !loggedFeasible {
			report.Misassigned = append(report.Misassigned, oid)
			continue
		}

		// A deviation from a uniquely-determined assignment is suspicious even
		// though the logged courier was eligible.
		if len(feas) == 1 && strings.ToUpper(plannedID) != entry.upperCourier {
			report.Misassigned = append(report.Misassigned, oid)
		}
	}

	deliveredWeight := make(map[string]float64, len(profiles))
	for oid, entry := range actual {
		o, known := ordersByID[oid]
		if !known {
			continue
		}
		if _, courierKnown := profileByUpper[entry.upperCourier]; courierKnown {
			deliveredWeight[entry.upperCourier] += o.Weight
		}
	}
	for upper, total := range deliveredWeight {
		p := profileByUpper[upper]
		if total > p.DailyCapacity+kernel.WeightEpsilon {
			report.OverloadedCouriers = append(report.OverloadedCouriers, p.CourierID)
		}
	}

	sort.Strings(report.Missing)
	sort.Strings(report.Unexpected)
	sort.Strings(report.Duplicate)
	sort.Strings(report.Late)
	sort.Strings(report.Misassigned)
	sort.Strings(report.OverloadedCouriers)

	return report
}
