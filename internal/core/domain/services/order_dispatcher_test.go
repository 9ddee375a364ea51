package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchZones() *zone.Index {
	return zone.NewIndex([]zone.Entry{
		{Raw: "nasr cty", Canonical: "Nasr City"},
		{Raw: "6october", Canonical: "6th of October"},
	})
}

func deadlineAt(day, hour int) *time.Time {
	ts := time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC)
	return &ts
}

func TestOrderDispatcher_Plan(t *testing.T) {
	d := services.NewOrderDispatcher()
	ix := dispatchZones()

	t.Run("assigns a covered eligible order", func(t *testing.T) {
		plan := d.Plan(
			[]order.CleanOrder{{
				OrderID: "ORD-001", City: "Nasr City", PaymentType: order.PaymentPrepaid,
				ProductType: order.ProductStandard, Weight: 2, Deadline: deadlineAt(1, 10),
			}},
			[]courier.Courier{{
				CourierID: "c1", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 10, Priority: 1,
			}},
			ix,
		)

		require.Len(t, plan.Assignments, 1)
		assert.Equal(t, services.Assignment{OrderID: "ORD-001", CourierID: "c1"}, plan.Assignments[0])
		assert.Empty(t, plan.Unassigned)
		assert.Equal(t, 2.0, plan.CapacityUsage["c1"])
	})

	t.Run("lower priority number wins", func(t *testing.T) {
		plan := d.Plan(
			[]order.CleanOrder{{
				OrderID: "ORD-001", City: "Nasr City", PaymentType: order.PaymentPrepaid,
				ProductType: order.ProductStandard, Weight: 1, Deadline: deadlineAt(1, 10),
			}},
			[]courier.Courier{
				{CourierID: "a", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 10, Priority: 2},
				{CourierID: "b", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 10, Priority: 1},
			},
			ix,
		)

		require.Len(t, plan.Assignments, 1)
		assert.Equal(t, "b", plan.Assignments[0].CourierID)
	})

	t.Run("equal priority breaks ties by lower load", func(t *testing.T) {
		// Deadlines force the big orders through A and B first, leaving A at 5
		// and B at 3 when the contested order arrives.
		orders := []order.CleanOrder{
			{OrderID: "ORD-001", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 5, Deadline: deadlineAt(1, 8)},
			{OrderID: "ORD-002", City: "6th of October", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 3, Deadline: deadlineAt(1, 9)},
			{OrderID: "ORD-003", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 1, Deadline: deadlineAt(1, 10)},
		}
		couriers := []courier.Courier{
			{CourierID: "courier-a", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 20, Priority: 1},
			{CourierID: "courier-b", ZonesCovered: []string{"Nasr City", "6october"}, DailyCapacity: 20, Priority: 1},
		}

		plan := d.Plan(orders, couriers, ix)

		byOrder := map[string]string{}
		for _, a := range plan.Assignments {
			byOrder[a.OrderID] = a.CourierID
		}
		require.Equal(t, "courier-a", byOrder["ORD-001"])
		require.Equal(t, "courier-b", byOrder["ORD-002"])
		assert.Equal(t, "courier-b", byOrder["ORD-003"], "tie must break toward the less-loaded courier")
	})

	t.Run("full tie breaks lexically by courier id", func(t *testing.T) {
		plan := d.Plan(
			[]order.CleanOrder{{
				OrderID: "ORD-001", City: "Nasr City", PaymentType: order.PaymentPrepaid,
				ProductType: order.ProductStandard, Weight: 1, Deadline: deadlineAt(1, 10),
			}},
			[]courier.Courier{
				{CourierID: "zeta", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 10, Priority: 1},
				{CourierID: "alpha", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 10, Priority: 1},
			},
			ix,
		)

		require.Len(t, plan.Assignments, 1)
		assert.Equal(t, "alpha", plan.Assignments[0].CourierID)
	})

	t.Run("COD and exclusions filter candidates", func(t *testing.T) {
		plan := d.Plan(
			[]order.CleanOrder{{
				OrderID: "ORD-001", City: "Nasr City", PaymentType: order.PaymentCOD,
				ProductType: order.ProductFragile, Weight: 1, Deadline: deadlineAt(1, 10),
			}},
			[]courier.Courier{
				{CourierID: "no-cod", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 10, Priority: 1},
				{CourierID: "no-fragile", ZonesCovered: []string{"Nasr City"}, AcceptsCOD: true, Exclusions: []string{"fragile"}, DailyCapacity: 10, Priority: 1},
				{CourierID: "ok", ZonesCovered: []string{"Nasr City"}, AcceptsCOD: true, DailyCapacity: 10, Priority: 5},
			},
			ix,
		)

		require.Len(t, plan.Assignments, 1)
		assert.Equal(t, "ok", plan.Assignments[0].CourierID)
	})

	t.Run("urgent orders claim capacity first", func(t *testing.T) {
		// One courier, capacity 10. The later-deadline order is listed first
		// but must lose the capacity race.
		orders := []order.CleanOrder{
			{OrderID: "ORD-LATE", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 8, Deadline: deadlineAt(2, 10)},
			{OrderID: "ORD-URGENT", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 8, Deadline: deadlineAt(1, 10)},
		}
		plan := d.Plan(orders, []courier.Courier{
			{CourierID: "solo", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 10, Priority: 1},
		}, ix)

		require.Len(t, plan.Assignments, 1)
		assert.Equal(t, "ORD-URGENT", plan.Assignments[0].OrderID)
		require.Len(t, plan.Unassigned, 1)
		assert.Equal(t, services.UnassignedRecord{
			OrderID: "ORD-LATE",
			Reason:  services.ReasonNoSupportedCourierOrCapacity,
		}, plan.Unassigned[0])
	})

	t.Run("missing deadlines sort last, then by order id", func(t *testing.T) {
		orders := []order.CleanOrder{
			{OrderID: "ORD-B", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 6},
			{OrderID: "ORD-A", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 6},
			{OrderID: "ORD-C", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 6, Deadline: deadlineAt(5, 10)},
		}
		plan := d.Plan(orders, []courier.Courier{
			{CourierID: "solo", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 12, Priority: 1},
		}, ix)

		// ORD-C has the only deadline and goes first; ORD-A beats ORD-B
		// lexically for the remaining capacity.
		assigned := map[string]bool{}
		for _, a := range plan.Assignments {
			assigned[a.OrderID] = true
		}
		assert.True(t, assigned["ORD-C"])
		assert.True(t, assigned["ORD-A"])
		require.Len(t, plan.Unassigned, 1)
		assert.Equal(t, "ORD-B", plan.Unassigned[0].OrderID)
	})

	t.Run("epsilon tolerance admits a near-capacity order", func(t *testing.T) {
		plan := d.Plan(
			[]order.CleanOrder{{
				OrderID: "ORD-001", City: "Nasr City", PaymentType: order.PaymentPrepaid,
				ProductType: order.ProductStandard, Weight: 10, Deadline: deadlineAt(1, 10),
			}},
			[]courier.Courier{{
				CourierID: "tight", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 9.9999999995, Priority: 1,
			}},
			ix,
		)

		require.Len(t, plan.Assignments, 1)
		assert.Empty(t, plan.Unassigned)
	})

	t.Run("every order lands in exactly one bucket and zero loads are reported", func(t *testing.T) {
		orders := []order.CleanOrder{
			{OrderID: "ORD-001", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 1, Deadline: deadlineAt(1, 10)},
			{OrderID: "ORD-002", City: "Nowhere", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 1, Deadline: deadlineAt(1, 11)},
		}
		couriers := []courier.Courier{
			{CourierID: "c1", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 10, Priority: 1},
			{CourierID: "idle", ZonesCovered: []string{"6october"}, DailyCapacity: 10, Priority: 1},
		}

		plan := d.Plan(orders, couriers, ix)

		assert.Len(t, plan.Assignments, 1)
		assert.Len(t, plan.Unassigned, 1)
		assert.Equal(t, 0.0, plan.CapacityUsage["idle"])

		for courierID, load := range plan.CapacityUsage {
			cap := couriers[0].DailyCapacity
			if courierID == "idle" {
				cap = couriers[1].DailyCapacity
			}
			assert.LessOrEqual(t, load, cap+1e-9)
		}
	})

	t.Run("deterministic across repeated runs", func(t *testing.T) {
		orders := []order.CleanOrder{
			{OrderID: "ORD-003", City: "Nasr City", PaymentType: order.PaymentPrepaid, ProductType: order.ProductStandard, Weight: 2, Deadline: deadlineAt(1, 10)},
			{OrderID: "ORD-001", City: "Nasr City", PaymentType: order.PaymentCOD, ProductType: order.ProductStandard, Weight: 3, Deadline: deadlineAt(1, 10)},
			{OrderID: "ORD-002", City: "6th of October", PaymentType: order.PaymentPrepaid, ProductType: order.ProductFragile, Weight: 4},
		}
		couriers := []courier.Courier{
			{CourierID: "c2", ZonesCovered: []string{"Nasr City", "6october"}, AcceptsCOD: true, DailyCapacity: 6, Priority: 1},
			{CourierID: "c1", ZonesCovered: []string{"Nasr City"}, DailyCapacity: 6, Priority: 1},
		}

		first := d.Plan(orders, couriers, ix)
		second := d.Plan(orders, couriers, ix)

		assert.Equal(t, first, second)
	})
}
