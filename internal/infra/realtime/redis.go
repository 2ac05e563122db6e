package realtime

import (
	"context"
	"encoding/json"

	"booking-crm/internal/pkg/config"
	"booking-crm/internal/pkg/errs"
	"booking-crm/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Comment events fan out over Redis pub/sub so every API instance can
// serve the SSE stream regardless of which one accepted the write.
const commentChannelPrefix = "booking:comments:"

func commentChannel(bookingID uuid.UUID) string {
	return commentChannelPrefix + bookingID.String()
}

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

type CommentBroker struct {
	client *redis.Client
}

func NewCommentBroker(client *redis.Client) *CommentBroker {
	return &CommentBroker{client: client}
}

func (b *CommentBroker) Publish(ctx context.Context, comment *queries.CommentView) error {
	payload, err := json.Marshal(comment)
	if err != nil {
		return errs.Wrap(err, "failed to marshal comment event")
	}
	if err := b.client.Publish(ctx, commentChannel(comment.BookingID), payload).Err(); err != nil {
		return errs.Wrap(err, "failed to publish comment event")
	}
	return nil
}

// Subscribe delivers comment events for one booking until ctx is done.
// The returned channel is closed when the subscription ends.
func (b *CommentBroker) Subscribe(ctx context.Context, bookingID uuid.UUID) (<-chan queries.CommentView, error) {
	sub := b.client.Subscribe(ctx, commentChannel(bookingID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, errs.Wrap(err, "failed to subscribe to comment channel")
	}

	out := make(chan queries.CommentView)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var view queries.CommentView
				if err := json.Unmarshal([]byte(msg.Payload), &view); err != nil {
					continue
				}
				select {
				case out <- view:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
