package queries

import (
	"context"
	"time"

	"booking-crm/internal/infra/db"
	"booking-crm/internal/pkg/clock"
)

type DashboardQueries interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

type BookingStatsReadStore interface {
	Stats(ctx context.Context, dbtx db.DBTX, now time.Time) (*DashboardStats, error)
}

type dashboardQueriesImpl struct {
	readStore BookingStatsReadStore
	dbtx      db.DBTX
	clock     clock.Clock
}

func NewDashboardQueries(readStore BookingStatsReadStore, dbtx db.DBTX, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{
		readStore: readStore,
		dbtx:      dbtx,
		clock:     clk,
	}
}

func (q *dashboardQueriesImpl) GetStats(ctx context.Context) (*DashboardStats, error) {
	return q.readStore.Stats(ctx, q.dbtx, q.clock.Now())
}
