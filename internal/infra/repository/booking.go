package repository

import (
	"context"

	"booking-crm/internal/domain/booking"
	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
	id, booking_number, customer_id, status, event_date, delivery_date,
	location, products, total_amount_cents, tax_amount_cents
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	details := b.Details()

	products, err := booking.EncodeProductLines(details.Products)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode product lines", err)
	}

	var id uuid.UUID
	err = dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.BookingNumber(),
		b.CustomerID(),
		b.Status().String(),
		pgconv.TimePtrToPgtype(details.EventDate),
		pgconv.TimePtrToPgtype(details.DeliveryDate),
		pgconv.StringPtrToPgtype(details.Location),
		products,
		details.TotalAmountCents,
		details.TaxAmountCents,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
