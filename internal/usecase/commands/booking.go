package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-crm/internal/domain/booking"
	reqdto "booking-crm/internal/handler/dto/request"
	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/infra/metrics"
	"booking-crm/internal/pkg/clock"
	"booking-crm/internal/pkg/errs"
	"booking-crm/internal/usecase/queries"
	"booking-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrCustomerNotFound  = errs.New("customer not found")
	ErrUnknownStatus     = errs.New("unknown status")
	ErrIllegalTransition = errs.New("illegal status transition")
	ErrDomainValidation  = errs.New("domain validation error")
	ErrTokenIssuance     = errs.New("token issuance failed")
)

// TransitionResult reports the committed state. Token is set only when the
// transition issued a fresh portal access token.
type TransitionResult struct {
	BookingID uuid.UUID
	NewStatus booking.Status
	Token     *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Transition(ctx context.Context, bookingID uuid.UUID, target string) (*TransitionResult, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	metrics        *metrics.Metrics
	clock          clock.Clock
	tokenTTL       time.Duration
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	m *metrics.Metrics,
	clk clock.Clock,
	tokenTTL time.Duration,
) BookingCommands {
	if tokenTTL <= 0 {
		tokenTTL = booking.AccessTokenTTL
	}
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
		metrics:        m,
		clock:          clk,
		tokenTTL:       tokenTTL,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	if _, err := c.uow.CommandReads().CustomerByID(ctx, req.CustomerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	lines := make([]booking.ProductLine, 0, len(req.Products))
	for _, p := range req.Products {
		lines = append(lines, booking.ProductLine{
			Name:              p.Name,
			Quantity:          p.Quantity,
			WrappingRequested: p.WrappingRequested,
		})
	}

	draft, err := c.factory.CreateDraft(req.CustomerID, booking.Details{
		EventDate:        req.EventDate,
		DeliveryDate:     req.DeliveryDate,
		Location:         req.Location,
		Products:         lines,
		TotalAmountCents: req.TotalAmountCents,
		TaxAmountCents:   req.TaxAmountCents,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Bookings().Create(ctx, tx.DB(), draft)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetBooking(ctx, id)
}

// Transition moves a booking along the lifecycle table. Confirming issues a
// portal token and upserts the confirmation record in the same transaction
// as the status change; a failed confirmation upsert is logged and the
// transition still commits.
func (c *bookingCommandsImpl) Transition(ctx context.Context, bookingID uuid.UUID, target string) (*TransitionResult, error) {
	targetStatus := booking.Status(target)

	snap, err := c.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := booking.ValidateTransition(snap.Status, targetStatus); err != nil {
		c.countTransition(snap.Status, targetStatus, "rejected")
		switch err {
		case booking.ErrInvalidStatus:
			return nil, ErrUnknownStatus
		default:
			return nil, errs.Mark(err, ErrIllegalTransition)
		}
	}

	result := &TransitionResult{BookingID: bookingID, NewStatus: targetStatus}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if targetStatus == booking.StatusConfirmed {
			token, tokenErr := c.issueToken(ctx, tx, bookingID)
			if tokenErr != nil {
				return tokenErr
			}
			result.Token = &token
		}

		if updateErr := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, targetStatus); updateErr != nil {
			return updateErr
		}

		if result.Token != nil {
			// Runs in a savepoint: a rejected upsert would otherwise abort
			// the enclosing transaction and take the token and status update
			// down with it at commit time.
			upsertErr := tx.Savepoint(ctx, func(dbtx db.DBTX) error {
				return tx.Confirmations().Upsert(ctx, dbtx, bookingID, *result.Token)
			})
			if upsertErr != nil {
				// The confirmed state and token must survive even if the
				// email-dispatch record could not be written.
				slog.Error("confirmation upsert failed, committing transition anyway",
					"booking_id", bookingID.String(),
					"error", upsertErr.Error())
				c.metrics.ConfirmationErrors.Inc()
			}
		}
		return nil
	})
	if err != nil {
		c.countTransition(snap.Status, targetStatus, "failed")
		return nil, err
	}

	c.countTransition(snap.Status, targetStatus, "committed")
	return result, nil
}

func (c *bookingCommandsImpl) issueToken(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (string, error) {
	token, err := booking.NewAccessToken()
	if err != nil {
		return "", errs.Mark(err, ErrTokenIssuance)
	}

	expiresAt := c.clock.Now().Add(c.tokenTTL)
	if err := tx.Tokens().Insert(ctx, tx.DB(), bookingID, token, expiresAt); err != nil {
		return "", err
	}

	c.metrics.TokensIssuedTotal.Inc()
	return token, nil
}

func (c *bookingCommandsImpl) countTransition(from, to booking.Status, result string) {
	c.metrics.TransitionsTotal.WithLabelValues(from.String(), to.String(), result).Inc()
}
