package readstore

import (
	"context"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentReadStore struct{}

func NewCommentReadStore() *CommentReadStore {
	return &CommentReadStore{}
}

const listCommentsSQL = `
SELECT c.id, c.booking_id, c.author_id, u.email, c.body, c.created_at
FROM booking_comments c
JOIN users u ON u.id = c.author_id
WHERE c.booking_id = $1
ORDER BY c.created_at ASC, c.id ASC`

func (s *CommentReadStore) ListByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]queries.CommentView, error) {
	rows, err := dbtx.Query(ctx, listCommentsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	views := make([]queries.CommentView, 0)
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(
			&view.ID,
			&view.BookingID,
			&view.AuthorID,
			&view.AuthorEmail,
			&view.Body,
			&view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}

	return views, nil
}
