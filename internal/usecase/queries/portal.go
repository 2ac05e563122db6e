package queries

import (
	"context"
	"time"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/pkg/clock"
	"booking-crm/internal/pkg/errs"
)

// Unknown, expired and revoked tokens all surface as the same error so the
// portal leaks nothing about which one it was.
var ErrTokenInvalid = errs.New("token invalid or expired")

type PortalQueries interface {
	GetBookingByToken(ctx context.Context, token string) (*PortalBookingView, error)
}

type PortalReadStore interface {
	FindByToken(ctx context.Context, dbtx db.DBTX, token string, now time.Time) (*PortalBookingView, error)
}

type portalQueriesImpl struct {
	readStore PortalReadStore
	dbtx      db.DBTX
	clock     clock.Clock
}

func NewPortalQueries(readStore PortalReadStore, dbtx db.DBTX, clk clock.Clock) PortalQueries {
	return &portalQueriesImpl{
		readStore: readStore,
		dbtx:      dbtx,
		clock:     clk,
	}
}

func (q *portalQueriesImpl) GetBookingByToken(ctx context.Context, token string) (*PortalBookingView, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	view, err := q.readStore.FindByToken(ctx, q.dbtx, token, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	return view, nil
}
