package commands

import (
	"context"
	"log/slog"
	"strings"

	reqdto "booking-crm/internal/handler/dto/request"
	"booking-crm/internal/infra"
	"booking-crm/internal/pkg/errs"
	"booking-crm/internal/usecase/queries"
	"booking-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmptyComment = errs.New("comment body is empty")

// CommentPublisher fans a stored comment out to live subscribers.
type CommentPublisher interface {
	Publish(ctx context.Context, comment *queries.CommentView) error
}

type CommentCommands interface {
	CreateComment(ctx context.Context, bookingID, authorID uuid.UUID, req reqdto.CreateCommentRequest) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher CommentPublisher
}

func NewCommentCommands(uow shared.UnitOfWork, publisher CommentPublisher) CommentCommands {
	return &commentCommandsImpl{
		uow:       uow,
		publisher: publisher,
	}
}

func (c *commentCommandsImpl) CreateComment(ctx context.Context, bookingID, authorID uuid.UUID, req reqdto.CreateCommentRequest) (*queries.CommentView, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrEmptyComment
	}

	if _, err := c.uow.CommandReads().BookingByID(ctx, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	var view *queries.CommentView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Comments().Create(ctx, tx.DB(), bookingID, authorID, body)
		if createErr != nil {
			return createErr
		}
		view = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Delivery to live subscribers is best effort; the comment is durable
	// once the transaction commits.
	if pubErr := c.publisher.Publish(ctx, view); pubErr != nil {
		slog.Warn("failed to publish comment event",
			"booking_id", bookingID.String(),
			"error", pubErr.Error())
	}

	return view, nil
}
