package repository

import (
	"context"
	"time"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"

	"github.com/google/uuid"
)

type BookingTokenRepository struct{}

func NewBookingTokenRepository() *BookingTokenRepository {
	return &BookingTokenRepository{}
}

const insertTokenSQL = `
INSERT INTO booking_tokens (id, booking_id, token, expires_at)
VALUES ($1, $2, $3, $4)`

func (r *BookingTokenRepository) Insert(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, token string, expiresAt time.Time) error {
	_, err := dbtx.Exec(ctx, insertTokenSQL, uuid.New(), bookingID, token, expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking token", err)
	}
	return nil
}
