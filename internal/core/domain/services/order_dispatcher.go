package services

import (
	"sort"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
)

// ReasonNoSupportedCourierOrCapacity is the single unassignment reason: the
// pipeline does not distinguish eligibility failures from exhausted capacity.
const ReasonNoSupportedCourierOrCapacity = "no_supported_courier_or_capacity"

// Assignment pairs an order with the courier chosen for it.
type Assignment struct {
	OrderID   string
	CourierID string
}

// UnassignedRecord names an order no courier could take, with the reason.
type UnassignedRecord struct {
	OrderID string
	Reason  string
}

// Plan is the output of one assignment run. Every clean order appears in
// exactly one of Assignments or Unassigned; CapacityUsage reports the final
// accumulated load of every courier, including zeros.
type Plan struct {
	Assignments   []Assignment
	Unassigned    []UnassignedRecord
	CapacityUsage map[string]float64
}

// PlannedCourier returns the courier planned for an order, if any.
func (p Plan) PlannedCourier(orderID string) (string, bool) {
	for _, a := range p.Assignments {
		if a.OrderID == orderID {
			return a.CourierID, true
		}
	}
	return "", false
}

// OrderDispatcher assigns clean orders to couriers with a greedy deterministic
// heuristic. It is intentionally not an optimum solver: orders are processed
// in urgency order and each claims capacity as it is assigned, so earlier
// deadlines win contested capacity.
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Plan assigns every order to at most one courier.
//
// Orders are processed by (deadline ascending, missing deadlines last, then
// order id). Per order, a courier is a candidate when it covers the order's
// canonical city or zone hint, is eligible for its payment and product type,
// and still has capacity for its weight. Candidates are ranked by
// (priority, current load, courier id); the winner's load grows immediately,
// before the next order is considered. The tie-break chain and the strictly
// sequential load mutation are part of the contract: changing either changes
// outcomes.
func (d OrderDispatcher) Plan(orders []order.CleanOrder, couriers []courier.Courier, zones *zone.Index) Plan {
	profiles := courier.NewProfiles(couriers, zones)

	loads := make(map[string]float64, len(profiles))
	for _, p := range profiles {
		loads[p.CourierID] = 0
	}

	queue := make([]order.CleanOrder, len(orders))
	copy(queue, orders)
	sort.SliceStable(queue, func(i, j int) bool {
		return urgencyLess(queue[i], queue[j])
	})

	plan := Plan{
		Assignments:   []Assignment{},
		Unassigned:    []UnassignedRecord{},
		CapacityUsage: loads,
	}

	for _, o := range queue {
		candidates := make([]courier.Profile, 0, len(profiles))
		for _, p := range profiles {
			if p.Covers(o) && p.Eligible(o) && p.Fits(loads[p.CourierID], o.Weight) {
				candidates = append(candidates, p)
			}
		}

		if len(candidates) == 0 {
			plan.Unassigned = append(plan.Unassigned, UnassignedRecord{
				OrderID: o.OrderID,
				Reason:  ReasonNoSupportedCourierOrCapacity,
			})
			continue
		}

		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}
			if loads[a.CourierID] != loads[b.CourierID] {
				return loads[a.CourierID] < loads[b.CourierID]
			}
			return a.CourierID < b.CourierID
		})

		chosen := candidates[0]
		plan.Assignments = append(plan.Assignments, Assignment{OrderID: o.OrderID, CourierID: chosen.CourierID})
		loads[chosen.CourierID] += o.Weight
	}

	sort.Slice(plan.Assignments, func(i, j int) bool {
		return plan.Assignments[i].OrderID < plan.Assignments[j].OrderID
	})
	sort.Slice(plan.Unassigned, func(i, j int) bool {
		return plan.Unassigned[i].OrderID < plan.Unassigned[j].OrderID
	})

	return plan
}

// urgencyLess orders by deadline ascending with missing deadlines last,
// breaking ties by order id.
func urgencyLess(a, b order.CleanOrder) bool {
	switch {
	case a.Deadline == nil && b.Deadline == nil:
		return a.OrderID < b.OrderID
	case a.Deadline == nil:
		return false
	case b.Deadline == nil:
		return true
	case a.Deadline.Equal(*b.Deadline):
		return a.OrderID < b.OrderID
	default:
		return a.Deadline.Before(*b.Deadline)
	}
}
