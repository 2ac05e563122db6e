//go:build unit || e2e

package builder

import (
	"time"

	"booking-crm/internal/domain/booking"
	reqdto "booking-crm/internal/handler/dto/request"
	"booking-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID               uuid.UUID
	BookingNumber    string
	CustomerID       uuid.UUID
	CustomerName     string
	CustomerEmail    string
	Status           string
	EventDate        *time.Time
	Location         *string
	Products         []booking.ProductLine
	TotalAmountCents int64
	TaxAmountCents   int64
}

func NewBookingBuilder() *BookingBuilder {
	eventDate := time.Date(2026, 6, 12, 9, 0, 0, 0, time.UTC)
	location := "Stockholmsmässan"
	return &BookingBuilder{
		ID:            uuid.New(),
		BookingNumber: "BK-260612-A1B2",
		CustomerID:    uuid.New(),
		CustomerName:  "Eventpartner AB",
		CustomerEmail: "kontakt@eventpartner.se",
		Status:        "draft",
		EventDate:     &eventDate,
		Location:      &location,
		Products: []booking.ProductLine{
			{Name: "Scenpodium", Quantity: 2},
			{Name: "Ljusrigg", Quantity: 1, WrappingRequested: true},
		},
		TotalAmountCents: 250000,
		TaxAmountCents:   62500,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewDraft(b.BookingNumber, b.CustomerID, booking.Details{
		EventDate:        b.EventDate,
		Location:         b.Location,
		Products:         b.Products,
		TotalAmountCents: b.TotalAmountCents,
		TaxAmountCents:   b.TaxAmountCents,
	})
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:               b.ID,
		BookingNumber:    b.BookingNumber,
		CustomerID:       b.CustomerID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		Status:           b.Status,
		EventDate:        b.EventDate,
		Location:         b.Location,
		Products:         b.Products,
		TotalAmountCents: b.TotalAmountCents,
		TaxAmountCents:   b.TaxAmountCents,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	products := make([]reqdto.ProductLineRequest, 0, len(b.Products))
	for _, p := range b.Products {
		products = append(products, reqdto.ProductLineRequest{
			Name:              p.Name,
			Quantity:          p.Quantity,
			WrappingRequested: p.WrappingRequested,
		})
	}
	return reqdto.CreateBookingRequest{
		CustomerID:       b.CustomerID,
		EventDate:        b.EventDate,
		Location:         b.Location,
		Products:         products,
		TotalAmountCents: b.TotalAmountCents,
		TaxAmountCents:   b.TaxAmountCents,
	}
}
