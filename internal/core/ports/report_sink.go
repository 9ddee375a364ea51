package ports

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

// ReportSink persists the artifacts produced by the pipeline stages.
type ReportSink interface {
	// SaveCleanOrders persists the normalized, deduplicated order set
	// together with the warnings the merge produced.
	SaveCleanOrders(ctx context.Context, orders []order.CleanOrder, warnings []string) error

	// SavePlan persists the assignment plan.
	SavePlan(ctx context.Context, plan services.Plan) error

	// SaveReconciliation persists the plan-versus-log discrepancy report.
	SaveReconciliation(ctx context.Context, report services.Report) error
}
