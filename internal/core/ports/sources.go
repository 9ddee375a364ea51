// Package ports defines the input and output contracts of the pipeline.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
)

// OrderSource provides the raw order feed exactly as exported upstream,
// with no normalization applied.
type OrderSource interface {
	// LoadRawOrders returns every raw order record in feed order.
	LoadRawOrders(ctx context.Context) ([]order.RawOrder, error)
}

// CourierSource provides the courier roster for the planning day.
type CourierSource interface {
	// LoadCouriers returns the roster in table order, with defaults
	// already applied to rows that omit capacity or priority.
	LoadCouriers(ctx context.Context) ([]courier.Courier, error)
}

// ZoneSource provides the raw-to-canonical zone alias table.
type ZoneSource interface {
	// LoadZones returns alias entries in table order. Later rows for the
	// same raw spelling override earlier ones.
	LoadZones(ctx context.Context) ([]zone.Entry, error)
}

// DeliveryLogSource provides the driver-reported delivery log.
type DeliveryLogSource interface {
	// LoadLogEntries returns usable log rows in file order. Malformed
	// rows are dropped at the adapter boundary, not surfaced as errors.
	LoadLogEntries(ctx context.Context) ([]services.LogEntry, error)
}
