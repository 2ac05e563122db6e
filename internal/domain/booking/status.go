package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// transitions mirrors the actions the CRM exposes: forward along
// draft → pending → confirmed → completed, cancellation until completion,
// and re-confirmation of a confirmed booking (resends the customer link,
// see the confirm command). completed and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusPending, StatusCancelled},
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidateTransition rejects unknown statuses before consulting the table,
// so callers can distinguish a bad enum value from a legal-but-wrong move.
func ValidateTransition(from, to Status) error {
	if !from.IsValid() || !to.IsValid() {
		return ErrInvalidStatus
	}
	if !from.CanTransitionTo(to) {
		return ErrIllegalTransition
	}
	return nil
}

func AllowedTransitions(from Status) []Status {
	allowed := transitions[from]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}
