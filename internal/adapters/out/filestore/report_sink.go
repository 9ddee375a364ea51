package filestore

import (
	"context"
	"math"
	"sort"
	"strconv"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

// cleanOrderRecord is the artifact form of a clean order. City, zone hint and
// deadline render as null when absent, matching what downstream consumers of
// the report already expect.
type cleanOrderRecord struct {
	OrderID     string  `json:"orderId"`
	City        *string `json:"city"`
	ZoneHint    *string `json:"zoneHint"`
	Address     string  `json:"address"`
	PaymentType string  `json:"paymentType"`
	ProductType string  `json:"productType"`
	Weight      float64 `json:"weight"`
	Deadline    *string `json:"deadline"`
}

type cleanOrdersArtifact struct {
	Orders   []cleanOrderRecord `json:"orders"`
	Warnings []string           `json:"warnings,omitempty"`
}

func fromCleanOrder(o order.CleanOrder) cleanOrderRecord {
	r := cleanOrderRecord{
		OrderID:     o.OrderID,
		Address:     o.Address,
		PaymentType: o.PaymentType,
		ProductType: o.ProductType,
		Weight:      o.Weight,
	}
	if o.City != "" {
		r.City = &o.City
	}
	if o.ZoneHint != "" {
		r.ZoneHint = &o.ZoneHint
	}
	if o.Deadline != nil {
		dl := kernel.FormatTimestamp(*o.Deadline)
		r.Deadline = &dl
	}
	return r
}

// SaveCleanOrders writes clean_orders.json. The warnings key is omitted
// entirely when there are none.
func (s *Store) SaveCleanOrders(_ context.Context, orders []order.CleanOrder, warnings []string) error {
	artifact := cleanOrdersArtifact{
		Orders:   make([]cleanOrderRecord, 0, len(orders)),
		Warnings: warnings,
	}
	for _, o := range orders {
		artifact.Orders = append(artifact.Orders, fromCleanOrder(o))
	}
	return s.writeArtifact(CleanOrdersFile, artifact)
}

// capacityWeight renders without a fractional component when the value is
// integral within the capacity epsilon, so a courier who carried exactly 7.0
// shows up as 7.
type capacityWeight float64

func (w capacityWeight) MarshalJSON() ([]byte, error) {
	v := float64(w)
	if i := math.Trunc(v); math.Abs(v-i) < kernel.WeightEpsilon {
		return strconv.AppendInt(nil, int64(i), 10), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type assignmentRecord struct {
	OrderID   string `json:"orderId"`
	CourierID string `json:"courierId"`
}

type unassignedRecord struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

type capacityRecord struct {
	CourierID   string         `json:"courierId"`
	TotalWeight capacityWeight `json:"totalWeight"`
}

type planArtifact struct {
	Assignments   []assignmentRecord `json:"assignments"`
	Unassigned    []unassignedRecord `json:"unassigned"`
	CapacityUsage []capacityRecord   `json:"capacityUsage"`
}

// SavePlan writes plan.json. Capacity usage is flattened from the plan's map
// into rows sorted by courier id, one per courier including idle ones.
func (s *Store) SavePlan(_ context.Context, plan services.Plan) error {
	artifact := planArtifact{
		Assignments:   make([]assignmentRecord, 0, len(plan.Assignments)),
		Unassigned:    make([]unassignedRecord, 0, len(plan.Unassigned)),
		CapacityUsage: make([]capacityRecord, 0, len(plan.CapacityUsage)),
	}
	for _, a := range plan.Assignments {
		artifact.Assignments = append(artifact.Assignments, assignmentRecord{OrderID: a.OrderID, CourierID: a.CourierID})
	}
	for _, u := range plan.Unassigned {
		artifact.Unassigned = append(artifact.Unassigned, unassignedRecord{OrderID: u.OrderID, Reason: u.Reason})
	}
	for id, load := range plan.CapacityUsage {
		artifact.CapacityUsage = append(artifact.CapacityUsage, capacityRecord{CourierID: id, TotalWeight: capacityWeight(load)})
	}
	sort.Slice(artifact.CapacityUsage, func(i, j int) bool {
		return artifact.CapacityUsage[i].CourierID < artifact.CapacityUsage[j].CourierID
	})
	return s.writeArtifact(PlanFile, artifact)
}

type reconciliationArtifact struct {
	Missing            []string `json:"missing"`
	Unexpected         []string `json:"unexpected"`
	Duplicate          []string `json:"duplicate"`
	Late               []string `json:"late"`
	Misassigned        []string `json:"misassigned"`
	OverloadedCouriers []string `json:"overloadedCouriers"`
}

// SaveReconciliation writes reconciliation.json.
func (s *Store) SaveReconciliation(_ context.Context, report services.Report) error {
	return s.writeArtifact(ReconciliationFile, reconciliationArtifact{
		Missing:            report.Missing,
		Unexpected:         report.Unexpected,
		Duplicate:          report.Duplicate,
		Late:               report.Late,
		Misassigned:        report.Misassigned,
		OverloadedCouriers: report.OverloadedCouriers,
	})
}
