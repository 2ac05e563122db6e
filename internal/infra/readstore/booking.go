package readstore

import (
	"context"
	"log/slog"
	"time"

	"booking-crm/internal/domain/booking"
	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/pkg/pgconv"
	"booking-crm/internal/usecase/queries"
	"booking-crm/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct{}

func NewBookingReadStore() *BookingReadStore {
	return &BookingReadStore{}
}

const bookingSnapshotSQL = `
SELECT id, booking_number, customer_id, status
FROM bookings
WHERE id = $1`

func (s *BookingReadStore) SnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap   shared.BookingSnapshot
		status string
	)
	err := dbtx.QueryRow(ctx, bookingSnapshotSQL, id).Scan(
		&snap.ID,
		&snap.BookingNumber,
		&snap.CustomerID,
		&status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking snapshot", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

const bookingByIDSQL = `
SELECT b.id, b.booking_number, b.customer_id, c.name, c.email, b.status,
	b.event_date, b.delivery_date, b.location, b.products,
	b.total_amount_cents, b.tax_amount_cents, b.created_at, b.updated_at
FROM bookings b
JOIN customers c ON c.id = b.customer_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view         queries.BookingView
		eventDate    pgtype.Timestamptz
		deliveryDate pgtype.Timestamptz
		location     pgtype.Text
		products     []byte
	)
	err := dbtx.QueryRow(ctx, bookingByIDSQL, id).Scan(
		&view.ID,
		&view.BookingNumber,
		&view.CustomerID,
		&view.CustomerName,
		&view.CustomerEmail,
		&view.Status,
		&eventDate,
		&deliveryDate,
		&location,
		&products,
		&view.TotalAmountCents,
		&view.TaxAmountCents,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	view.EventDate = pgconv.TimePtrFromPgtype(eventDate)
	view.DeliveryDate = pgconv.TimePtrFromPgtype(deliveryDate)
	view.Location = pgconv.StringPtrFromPgtype(location)
	view.Products = decodeProducts(view.ID, products)

	return &view, nil
}

const listBookingsSQL = `
SELECT b.id, b.booking_number, c.name, b.status, b.event_date,
	b.total_amount_cents, b.created_at
FROM bookings b
JOIN customers c ON c.id = b.customer_id
WHERE ($1::text IS NULL OR b.status = $1)
ORDER BY b.created_at DESC
LIMIT $2 OFFSET $3`

func (s *BookingReadStore) List(ctx context.Context, dbtx db.DBTX, statusFilter *string, limit, offset int32) ([]queries.BookingListItem, error) {
	rows, err := dbtx.Query(ctx, listBookingsSQL, statusFilter, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item      queries.BookingListItem
			eventDate pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID,
			&item.BookingNumber,
			&item.CustomerName,
			&item.Status,
			&eventDate,
			&item.TotalAmountCents,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.EventDate = pgconv.TimePtrFromPgtype(eventDate)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return items, nil
}

const bookingByTokenSQL = `
SELECT b.id, b.booking_number, c.name, b.status, b.event_date, b.delivery_date,
	b.location, b.products, b.total_amount_cents, b.tax_amount_cents
FROM booking_tokens t
JOIN bookings b ON b.id = t.booking_id
JOIN customers c ON c.id = b.customer_id
WHERE t.token = $1 AND t.expires_at > $2`

// FindByToken resolves an unexpired portal token. Expired and unknown
// tokens are indistinguishable to the caller.
func (s *BookingReadStore) FindByToken(ctx context.Context, dbtx db.DBTX, token string, now time.Time) (*queries.PortalBookingView, error) {
	var (
		bookingID    uuid.UUID
		view         queries.PortalBookingView
		eventDate    pgtype.Timestamptz
		deliveryDate pgtype.Timestamptz
		location     pgtype.Text
		products     []byte
	)
	err := dbtx.QueryRow(ctx, bookingByTokenSQL, token, now).Scan(
		&bookingID,
		&view.BookingNumber,
		&view.CustomerName,
		&view.Status,
		&eventDate,
		&deliveryDate,
		&location,
		&products,
		&view.TotalAmountCents,
		&view.TaxAmountCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by token", err)
	}

	view.EventDate = pgconv.TimePtrFromPgtype(eventDate)
	view.DeliveryDate = pgconv.TimePtrFromPgtype(deliveryDate)
	view.Location = pgconv.StringPtrFromPgtype(location)
	view.Products = decodeProducts(bookingID, products)

	return &view, nil
}

const dashboardStatsSQL = `
SELECT
	status,
	count(*),
	coalesce(sum(total_amount_cents) FILTER (WHERE status = 'confirmed'), 0),
	count(*) FILTER (WHERE event_date >= $1 AND status IN ('pending', 'confirmed'))
FROM bookings
GROUP BY status`

func (s *BookingReadStore) Stats(ctx context.Context, dbtx db.DBTX, now time.Time) (*queries.DashboardStats, error) {
	rows, err := dbtx.Query(ctx, dashboardStatsSQL, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard stats", err)
	}
	defer rows.Close()

	stats := &queries.DashboardStats{StatusCounts: make(map[string]int64)}
	for rows.Next() {
		var (
			status   string
			count    int64
			revenue  int64
			upcoming int64
		)
		if err := rows.Scan(&status, &count, &revenue, &upcoming); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stats row", err)
		}
		stats.StatusCounts[status] = count
		stats.ConfirmedRevenueCents += revenue
		stats.UpcomingEventCount += upcoming
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stats rows", err)
	}

	return stats, nil
}

// Legacy rows may carry string-wrapped product payloads; a row that fails
// even the tolerant decoder degrades to an empty list rather than failing
// the whole read.
func decodeProducts(bookingID uuid.UUID, raw []byte) []booking.ProductLine {
	lines, err := booking.DecodeProductLines(raw)
	if err != nil {
		slog.Warn("malformed products payload, returning empty list",
			"booking_id", bookingID.String(),
			"error", err.Error())
		return []booking.ProductLine{}
	}
	return lines
}
