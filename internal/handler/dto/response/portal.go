package response

import (
	"time"

	"booking-crm/internal/domain/booking"
	"booking-crm/internal/usecase/queries"
)

type PortalBookingResponse struct {
	BookingNumber    string                `json:"bookingNumber"`
	CustomerName     string                `json:"customerName"`
	Status           string                `json:"status"`
	StatusDisplay    booking.StatusDisplay `json:"statusDisplay"`
	EventDate        *time.Time            `json:"eventDate,omitempty"`
	DeliveryDate     *time.Time            `json:"deliveryDate,omitempty"`
	Location         *string               `json:"location,omitempty"`
	Products         []booking.ProductLine `json:"products"`
	TotalAmountCents int64                 `json:"totalAmountCents"`
	TaxAmountCents   int64                 `json:"taxAmountCents"`
}

func FromPortalBookingView(rm *queries.PortalBookingView) *PortalBookingResponse {
	status := booking.Status(rm.Status)
	return &PortalBookingResponse{
		BookingNumber:    rm.BookingNumber,
		CustomerName:     rm.CustomerName,
		Status:           rm.Status,
		StatusDisplay:    status.Display(),
		EventDate:        rm.EventDate,
		DeliveryDate:     rm.DeliveryDate,
		Location:         rm.Location,
		Products:         rm.Products,
		TotalAmountCents: rm.TotalAmountCents,
		TaxAmountCents:   rm.TaxAmountCents,
	}
}
