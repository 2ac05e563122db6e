package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer = errors.New("booking requires a customer")
	ErrInvalidQuantity = errors.New("product quantity must be positive")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
)

// Details groups the descriptive attributes of a booking; the lifecycle
// status is managed separately through the transition table.
type Details struct {
	EventDate        *time.Time
	DeliveryDate     *time.Time
	Location         *string
	Products         []ProductLine
	TotalAmountCents int64
	TaxAmountCents   int64
}

type Booking struct {
	id            uuid.UUID
	bookingNumber string
	customerID    uuid.UUID
	status        Status
	details       Details
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDraft(bookingNumber string, customerID uuid.UUID, details Details) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	for _, line := range details.Products {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	if details.TotalAmountCents < 0 || details.TaxAmountCents < 0 {
		return nil, ErrNegativeAmount
	}
	if details.Products == nil {
		details.Products = []ProductLine{}
	}

	return &Booking{
		id:            uuid.New(),
		bookingNumber: bookingNumber,
		customerID:    customerID,
		status:        StatusDraft,
		details:       details,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	bookingNumber string,
	customerID uuid.UUID,
	status Status,
	details Details,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		bookingNumber: bookingNumber,
		customerID:    customerID,
		status:        status,
		details:       details,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) BookingNumber() string { return b.bookingNumber }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Details() Details      { return b.details }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
