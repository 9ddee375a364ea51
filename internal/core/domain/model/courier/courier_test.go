package courier_test

import (
	"testing"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"

	"github.com/stretchr/testify/assert"
)

func testZones() *zone.Index {
	return zone.NewIndex([]zone.Entry{
		{Raw: "nasr cty", Canonical: "Nasr City"},
		{Raw: "6october", Canonical: "6th of October"},
	})
}

func TestProfile_Covers(t *testing.T) {
	p := courier.NewProfile(courier.Courier{
		CourierID:    "c1",
		ZonesCovered: []string{"nasr cty", "6 Oct"},
	}, testZones())

	t.Run("covers by canonical city", func(t *testing.T) {
		assert.True(t, p.Covers(order.CleanOrder{City: "Nasr City"}))
	})

	t.Run("raw coverage entries are canonicalized", func(t *testing.T) {
		// "6 Oct" in the courier table resolves to "6th of October".
		assert.True(t, p.Covers(order.CleanOrder{ZoneHint: "6th of October"}))
	})

	t.Run("zone hint matches when city does not", func(t *testing.T) {
		assert.True(t, p.Covers(order.CleanOrder{City: "Maadi", ZoneHint: "Nasr City"}))
	})

	t.Run("no match outside covered zones", func(t *testing.T) {
		assert.False(t, p.Covers(order.CleanOrder{City: "Maadi"}))
	})

	t.Run("orders without city or hint never match", func(t *testing.T) {
		assert.False(t, p.Covers(order.CleanOrder{}))
	})

	t.Run("empty coverage entries are dropped", func(t *testing.T) {
		empty := courier.NewProfile(courier.Courier{
			CourierID:    "c2",
			ZonesCovered: []string{""},
		}, testZones())
		assert.False(t, empty.Covers(order.CleanOrder{}))
	})
}

func TestProfile_Eligible(t *testing.T) {
	ix := testZones()

	t.Run("COD order needs a COD courier", func(t *testing.T) {
		noCOD := courier.NewProfile(courier.Courier{CourierID: "c1"}, ix)
		withCOD := courier.NewProfile(courier.Courier{CourierID: "c2", AcceptsCOD: true}, ix)
		codOrder := order.CleanOrder{PaymentType: order.PaymentCOD}

		assert.False(t, noCOD.Eligible(codOrder))
		assert.True(t, withCOD.Eligible(codOrder))
	})

	t.Run("prepaid orders ignore the COD flag", func(t *testing.T) {
		noCOD := courier.NewProfile(courier.Courier{CourierID: "c1"}, ix)
		assert.True(t, noCOD.Eligible(order.CleanOrder{PaymentType: order.PaymentPrepaid}))
	})

	t.Run("excluded product types are rejected case-insensitively", func(t *testing.T) {
		p := courier.NewProfile(courier.Courier{
			CourierID:  "c1",
			Exclusions: []string{" Fragile "},
		}, ix)

		assert.False(t, p.Eligible(order.CleanOrder{ProductType: order.ProductFragile}))
		assert.True(t, p.Eligible(order.CleanOrder{ProductType: order.ProductStandard}))
	})
}

func TestProfile_Fits(t *testing.T) {
	p := courier.NewProfile(courier.Courier{CourierID: "c1", DailyCapacity: 10}, testZones())

	assert.True(t, p.Fits(0, 10))
	assert.False(t, p.Fits(5, 5.1))

	t.Run("epsilon tolerance admits near-capacity weights", func(t *testing.T) {
		// Remaining capacity 9.9999999995 is within 1e-9 of the order's 10.
		tight := courier.NewProfile(courier.Courier{CourierID: "c2", DailyCapacity: 9.9999999995}, testZones())
		assert.True(t, tight.Fits(0, 10))
	})
}

func TestNewProfile_UpperID(t *testing.T) {
	p := courier.NewProfile(courier.Courier{CourierID: "courier_a"}, testZones())
	assert.Equal(t, "COURIER_A", p.UpperID)
	assert.Equal(t, "courier_a", p.CourierID)
}
