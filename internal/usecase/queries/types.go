package queries

import (
	"time"

	"booking-crm/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID               uuid.UUID             `json:"id"`
	BookingNumber    string                `json:"booking_number"`
	CustomerID       uuid.UUID             `json:"customer_id"`
	CustomerName     string                `json:"customer_name"`
	CustomerEmail    string                `json:"customer_email"`
	Status           string                `json:"status"`
	EventDate        *time.Time            `json:"event_date,omitempty"`
	DeliveryDate     *time.Time            `json:"delivery_date,omitempty"`
	Location         *string               `json:"location,omitempty"`
	Products         []booking.ProductLine `json:"products"`
	TotalAmountCents int64                 `json:"total_amount_cents"`
	TaxAmountCents   int64                 `json:"tax_amount_cents"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type BookingListItem struct {
	ID               uuid.UUID  `json:"id"`
	BookingNumber    string     `json:"booking_number"`
	CustomerName     string     `json:"customer_name"`
	Status           string     `json:"status"`
	EventDate        *time.Time `json:"event_date,omitempty"`
	TotalAmountCents int64      `json:"total_amount_cents"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PortalBookingView is the customer-facing projection; it deliberately
// omits internal identifiers beyond the booking number.
type PortalBookingView struct {
	BookingNumber    string                `json:"booking_number"`
	CustomerName     string                `json:"customer_name"`
	Status           string                `json:"status"`
	EventDate        *time.Time            `json:"event_date,omitempty"`
	DeliveryDate     *time.Time            `json:"delivery_date,omitempty"`
	Location         *string               `json:"location,omitempty"`
	Products         []booking.ProductLine `json:"products"`
	TotalAmountCents int64                 `json:"total_amount_cents"`
	TaxAmountCents   int64                 `json:"tax_amount_cents"`
}

type CommentView struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	AuthorID    uuid.UUID `json:"author_id"`
	AuthorEmail string    `json:"author_email"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardStats replaces the client-side array arithmetic of the original
// dashboard with one aggregated read.
type DashboardStats struct {
	StatusCounts          map[string]int64 `json:"status_counts"`
	ConfirmedRevenueCents int64            `json:"confirmed_revenue_cents"`
	UpcomingEventCount    int64            `json:"upcoming_event_count"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
