package repository

import (
	"context"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

const createCommentSQL = `
WITH inserted AS (
	INSERT INTO booking_comments (id, booking_id, author_id, body)
	VALUES ($1, $2, $3, $4)
	RETURNING id, booking_id, author_id, body, created_at
)
SELECT i.id, i.booking_id, i.author_id, u.email, i.body, i.created_at
FROM inserted i
JOIN users u ON u.id = i.author_id`

func (r *CommentRepository) Create(ctx context.Context, dbtx db.DBTX, bookingID, authorID uuid.UUID, body string) (*queries.CommentView, error) {
	var view queries.CommentView
	err := dbtx.QueryRow(ctx, createCommentSQL, uuid.New(), bookingID, authorID, body).Scan(
		&view.ID,
		&view.BookingID,
		&view.AuthorID,
		&view.AuthorEmail,
		&view.Body,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return &view, nil
}
