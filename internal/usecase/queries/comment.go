package queries

import (
	"context"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"

	"github.com/google/uuid"
)

type CommentQueries interface {
	ListComments(ctx context.Context, bookingID uuid.UUID) ([]CommentView, error)
}

type CommentReadStore interface {
	ListByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]CommentView, error)
}

type commentQueriesImpl struct {
	readStore        CommentReadStore
	bookingReadStore BookingReadStore
	dbtx             db.DBTX
}

func NewCommentQueries(readStore CommentReadStore, bookingReadStore BookingReadStore, dbtx db.DBTX) CommentQueries {
	return &commentQueriesImpl{
		readStore:        readStore,
		bookingReadStore: bookingReadStore,
		dbtx:             dbtx,
	}
}

func (q *commentQueriesImpl) ListComments(ctx context.Context, bookingID uuid.UUID) ([]CommentView, error) {
	// Distinguish an unknown booking from one without comments.
	if _, err := q.bookingReadStore.FindByID(ctx, q.dbtx, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return q.readStore.ListByBooking(ctx, q.dbtx, bookingID)
}
