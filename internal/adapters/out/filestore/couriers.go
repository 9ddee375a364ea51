package filestore

import (
	"context"
	"encoding/json"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/pkg/errs"
)

// courierRecord mirrors one element of couriers.json. Capacity and priority
// are pointers so a missing key is distinguishable from an explicit zero.
type courierRecord struct {
	CourierID     string   `json:"courierId"`
	ZonesCovered  []string `json:"zonesCovered"`
	AcceptsCOD    bool     `json:"acceptsCOD"`
	Exclusions    []string `json:"exclusions"`
	DailyCapacity *float64 `json:"dailyCapacity"`
	Priority      *int     `json:"priority"`
}

func (r courierRecord) toDomain() courier.Courier {
	c := courier.Courier{
		CourierID:    r.CourierID,
		ZonesCovered: r.ZonesCovered,
		AcceptsCOD:   r.AcceptsCOD,
		Exclusions:   r.Exclusions,
		Priority:     courier.DefaultPriority,
	}
	if r.DailyCapacity != nil {
		c.DailyCapacity = *r.DailyCapacity
	}
	if r.Priority != nil {
		c.Priority = *r.Priority
	}
	return c
}

// LoadCouriers reads couriers.json and returns the roster in table order.
func (s *Store) LoadCouriers(_ context.Context) ([]courier.Courier, error) {
	data, err := s.readInput(CouriersFile)
	if err != nil {
		return nil, err
	}

	var records []courierRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(CouriersFile, err)
	}

	roster := make([]courier.Courier, 0, len(records))
	for _, r := range records {
		roster = append(roster, r.toDomain())
	}
	return roster, nil
}
