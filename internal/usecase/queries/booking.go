package queries

import (
	"context"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, filter BookingListFilter) ([]BookingListItem, error)
}

type BookingListFilter struct {
	Status *string
	Limit  int32
	Offset int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, dbtx db.DBTX, statusFilter *string, limit, offset int32) ([]BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	dbtx      db.DBTX
}

func NewBookingQueries(readStore BookingReadStore, dbtx db.DBTX) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		dbtx:      dbtx,
	}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, q.dbtx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, filter BookingListFilter) ([]BookingListItem, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	return q.readStore.List(ctx, q.dbtx, filter.Status, limit, offset)
}
