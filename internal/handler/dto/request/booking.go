package request

import (
	"time"

	"github.com/google/uuid"
)

type ProductLineRequest struct {
	Name              string `json:"name" binding:"required"`
	Quantity          int    `json:"quantity" binding:"required,gt=0"`
	WrappingRequested bool   `json:"wrapping_requested"`
}

type CreateBookingRequest struct {
	CustomerID       uuid.UUID            `json:"customer_id" binding:"required"`
	EventDate        *time.Time           `json:"event_date,omitempty"`
	DeliveryDate     *time.Time           `json:"delivery_date,omitempty"`
	Location         *string              `json:"location,omitempty"`
	Products         []ProductLineRequest `json:"products" binding:"omitempty,dive"`
	TotalAmountCents int64                `json:"total_amount_cents" binding:"gte=0"`
	TaxAmountCents   int64                `json:"tax_amount_cents" binding:"gte=0"`
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,max=4000"`
}
