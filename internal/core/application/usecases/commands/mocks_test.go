package commands_test

import (
	"context"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) LoadRawOrders(ctx context.Context) ([]order.RawOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.RawOrder), args.Error(1)
}

type MockCourierSource struct{ mock.Mock }

func (m *MockCourierSource) LoadCouriers(ctx context.Context) ([]courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]courier.Courier), args.Error(1)
}

type MockZoneSource struct{ mock.Mock }

func (m *MockZoneSource) LoadZones(ctx context.Context) ([]zone.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]zone.Entry), args.Error(1)
}

type MockDeliveryLogSource struct{ mock.Mock }

func (m *MockDeliveryLogSource) LoadLogEntries(ctx context.Context) ([]services.LogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.LogEntry), args.Error(1)
}

type MockReportSink struct{ mock.Mock }

func (m *MockReportSink) SaveCleanOrders(ctx context.Context, orders []order.CleanOrder, warnings []string) error {
	args := m.Called(ctx, orders, warnings)
	return args.Error(0)
}

func (m *MockReportSink) SavePlan(ctx context.Context, plan services.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockReportSink) SaveReconciliation(ctx context.Context, report services.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
