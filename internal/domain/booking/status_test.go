//go:build unit

package booking_test

import (
	"testing"

	"booking-crm/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"draft", "pending", "confirmed", "completed", "cancelled"} {
		status, err := booking.NewStatus(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, status.String())
	}

	for _, invalid := range []string{"", "DRAFT", "archived", "confirmed "} {
		_, err := booking.NewStatus(invalid)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus, invalid)
	}
}

func TestValidateTransition(t *testing.T) {
	type transitionCase struct {
		name  string
		from  booking.Status
		to    booking.Status
		errIs error
	}

	runCases := func(t *testing.T, cases []transitionCase) {
		t.Helper()
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := booking.ValidateTransition(tc.from, tc.to)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	}

	t.Run("forward lifecycle", func(t *testing.T) {
		runCases(t, []transitionCase{
			{name: "draft to pending", from: booking.StatusDraft, to: booking.StatusPending},
			{name: "pending to confirmed", from: booking.StatusPending, to: booking.StatusConfirmed},
			{name: "confirmed to completed", from: booking.StatusConfirmed, to: booking.StatusCompleted},
			{name: "draft cannot skip to confirmed", from: booking.StatusDraft, to: booking.StatusConfirmed, errIs: booking.ErrIllegalTransition},
			{name: "pending cannot skip to completed", from: booking.StatusPending, to: booking.StatusCompleted, errIs: booking.ErrIllegalTransition},
		})
	})

	t.Run("re-confirmation", func(t *testing.T) {
		runCases(t, []transitionCase{
			{name: "confirmed to confirmed is allowed", from: booking.StatusConfirmed, to: booking.StatusConfirmed},
			{name: "no other self transition", from: booking.StatusPending, to: booking.StatusPending, errIs: booking.ErrIllegalTransition},
		})
	})

	t.Run("cancellation", func(t *testing.T) {
		runCases(t, []transitionCase{
			{name: "draft can cancel", from: booking.StatusDraft, to: booking.StatusCancelled},
			{name: "pending can cancel", from: booking.StatusPending, to: booking.StatusCancelled},
			{name: "confirmed can cancel", from: booking.StatusConfirmed, to: booking.StatusCancelled},
			{name: "completed cannot cancel", from: booking.StatusCompleted, to: booking.StatusCancelled, errIs: booking.ErrIllegalTransition},
		})
	})

	t.Run("terminal states", func(t *testing.T) {
		for _, terminal := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled} {
			assert.Empty(t, booking.AllowedTransitions(terminal), terminal.String())
		}
	})

	t.Run("unknown statuses rejected before the table is consulted", func(t *testing.T) {
		runCases(t, []transitionCase{
			{name: "unknown source", from: booking.Status("archived"), to: booking.StatusPending, errIs: booking.ErrInvalidStatus},
			{name: "unknown target", from: booking.StatusDraft, to: booking.Status("archived"), errIs: booking.ErrInvalidStatus},
			{name: "both unknown", from: booking.Status(""), to: booking.Status("x"), errIs: booking.ErrInvalidStatus},
		})
	})
}

func TestStatusDisplay(t *testing.T) {
	cases := map[booking.Status]string{
		booking.StatusDraft:     "Utkast",
		booking.StatusPending:   "Väntande",
		booking.StatusConfirmed: "Bekräftad",
		booking.StatusCompleted: "Slutförd",
		booking.StatusCancelled: "Avbokad",
	}
	for status, label := range cases {
		display := status.Display()
		assert.Equal(t, label, display.Label)
		assert.NotEmpty(t, display.ColorClass)
	}

	t.Run("unknown status falls back to the raw value", func(t *testing.T) {
		display := booking.Status("archived").Display()
		assert.Equal(t, "archived", display.Label)
		assert.NotEmpty(t, display.ColorClass)
	})
}
