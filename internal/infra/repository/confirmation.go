package repository

import (
	"context"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"

	"github.com/google/uuid"
)

type ConfirmationRepository struct{}

func NewConfirmationRepository() *ConfirmationRepository {
	return &ConfirmationRepository{}
}

// A single atomic upsert keyed on booking_id. Re-confirming a booking
// replaces the token and resets email_sent so the dispatcher picks the
// record up again.
const upsertConfirmationSQL = `
INSERT INTO booking_confirmations (id, booking_id, token, email_sent)
VALUES ($1, $2, $3, false)
ON CONFLICT (booking_id) DO UPDATE
SET token = EXCLUDED.token, email_sent = false, updated_at = now()`

func (r *ConfirmationRepository) Upsert(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, token string) error {
	_, err := dbtx.Exec(ctx, upsertConfirmationSQL, uuid.New(), bookingID, token)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert booking confirmation", err)
	}
	return nil
}
