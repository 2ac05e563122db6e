package booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"booking-crm/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory creates draft bookings with a generated human-facing number.
type Factory struct {
	clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{clock: clock}
}

func (f *Factory) CreateDraft(customerID uuid.UUID, details Details) (*Booking, error) {
	number, err := f.newBookingNumber()
	if err != nil {
		return nil, err
	}
	return NewDraft(number, customerID, details)
}

// Booking numbers are read aloud by staff; date prefix plus a short random
// suffix keeps them sortable and unambiguous.
func (f *Factory) newBookingNumber() (string, error) {
	suffix := make([]byte, 2)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	date := f.clock.Now().Format("060102")
	return fmt.Sprintf("BK-%s-%s", date, strings.ToUpper(hex.EncodeToString(suffix))), nil
}
