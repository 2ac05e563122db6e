package response

import (
	"time"

	"booking-crm/internal/domain/booking"
	"booking-crm/internal/usecase/commands"
	"booking-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID             `json:"id"`
	BookingNumber    string                `json:"bookingNumber"`
	CustomerID       uuid.UUID             `json:"customerId"`
	CustomerName     string                `json:"customerName"`
	CustomerEmail    string                `json:"customerEmail"`
	Status           string                `json:"status"`
	StatusDisplay    booking.StatusDisplay `json:"statusDisplay"`
	EventDate        *time.Time            `json:"eventDate,omitempty"`
	DeliveryDate     *time.Time            `json:"deliveryDate,omitempty"`
	Location         *string               `json:"location,omitempty"`
	Products         []booking.ProductLine `json:"products"`
	TotalAmountCents int64                 `json:"totalAmountCents"`
	TaxAmountCents   int64                 `json:"taxAmountCents"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

type BookingListResponse struct {
	ID               uuid.UUID             `json:"id"`
	BookingNumber    string                `json:"bookingNumber"`
	CustomerName     string                `json:"customerName"`
	Status           string                `json:"status"`
	StatusDisplay    booking.StatusDisplay `json:"statusDisplay"`
	EventDate        *time.Time            `json:"eventDate,omitempty"`
	TotalAmountCents int64                 `json:"totalAmountCents"`
	CreatedAt        time.Time             `json:"createdAt"`
}

type TransitionResponse struct {
	ID            uuid.UUID             `json:"id"`
	Status        string                `json:"status"`
	StatusDisplay booking.StatusDisplay `json:"statusDisplay"`
	AccessToken   *string               `json:"accessToken,omitempty"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	status := booking.Status(rm.Status)
	return &BookingResponse{
		ID:               rm.ID,
		BookingNumber:    rm.BookingNumber,
		CustomerID:       rm.CustomerID,
		CustomerName:     rm.CustomerName,
		CustomerEmail:    rm.CustomerEmail,
		Status:           rm.Status,
		StatusDisplay:    status.Display(),
		EventDate:        rm.EventDate,
		DeliveryDate:     rm.DeliveryDate,
		Location:         rm.Location,
		Products:         rm.Products,
		TotalAmountCents: rm.TotalAmountCents,
		TaxAmountCents:   rm.TaxAmountCents,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	status := booking.Status(rm.Status)
	return &BookingListResponse{
		ID:               rm.ID,
		BookingNumber:    rm.BookingNumber,
		CustomerName:     rm.CustomerName,
		Status:           rm.Status,
		StatusDisplay:    status.Display(),
		EventDate:        rm.EventDate,
		TotalAmountCents: rm.TotalAmountCents,
		CreatedAt:        rm.CreatedAt,
	}
}

func FromTransitionResult(result *commands.TransitionResult) *TransitionResponse {
	return &TransitionResponse{
		ID:            result.BookingID,
		Status:        result.NewStatus.String(),
		StatusDisplay: result.NewStatus.Display(),
		AccessToken:   result.Token,
	}
}
