//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"booking-crm/internal/domain/booking"
	"booking-crm/internal/pkg/clock"
	"booking-crm/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	t.Run("valid draft", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusDraft, b.Status())
		assert.Len(t, b.Details().Products, 2)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
			errIs  error
		}{
			{
				name:   "missing customer",
				mutate: func(b *builder.BookingBuilder) { b.CustomerID = uuid.Nil },
				errIs:  booking.ErrMissingCustomer,
			},
			{
				name: "zero quantity",
				mutate: func(b *builder.BookingBuilder) {
					b.Products = []booking.ProductLine{{Name: "Scenpodium", Quantity: 0}}
				},
				errIs: booking.ErrInvalidQuantity,
			},
			{
				name: "negative quantity",
				mutate: func(b *builder.BookingBuilder) {
					b.Products = []booking.ProductLine{{Name: "Scenpodium", Quantity: -1}}
				},
				errIs: booking.ErrInvalidQuantity,
			},
			{
				name:   "negative total",
				mutate: func(b *builder.BookingBuilder) { b.TotalAmountCents = -1 },
				errIs:  booking.ErrNegativeAmount,
			},
			{
				name:   "negative tax",
				mutate: func(b *builder.BookingBuilder) { b.TaxAmountCents = -1 },
				errIs:  booking.ErrNegativeAmount,
			},
			{
				name:   "no products is fine",
				mutate: func(b *builder.BookingBuilder) { b.Products = nil },
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b, err := builder.NewBookingBuilder().With(tc.mutate).BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.NotNil(t, b.Details().Products)
			})
		}
	})
}

func TestFactoryCreateDraft(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC))
	factory := booking.NewFactory(clk)

	b, err := factory.CreateDraft(uuid.New(), booking.Details{})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BK-260612-[0-9A-F]{4}$`), b.BookingNumber())
	assert.Equal(t, booking.StatusDraft, b.Status())
}
