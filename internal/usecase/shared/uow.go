package shared

import (
	"context"
	"time"

	"booking-crm/internal/domain/booking"
	"booking-crm/internal/domain/user"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Tokens() BookingTokenRepository
	Confirmations() ConfirmationRepository
	Users() UserRepository
	Comments() CommentRepository
	DB() db.DBTX
	// Savepoint runs fn in a nested transaction scope. A failing statement
	// inside fn poisons only the savepoint, never the enclosing transaction.
	Savepoint(ctx context.Context, fn func(dbtx db.DBTX) error) error
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
}

// Minimal snapshots for command-side validation
type BookingSnapshot struct {
	ID            uuid.UUID
	BookingNumber string
	CustomerID    uuid.UUID
	Status        booking.Status
}

type CustomerSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
}

type BookingTokenRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, token string, expiresAt time.Time) error
}

type ConfirmationRepository interface {
	// Upsert keyed on booking_id; resets email_sent so the external
	// dispatcher re-sends on re-confirmation.
	Upsert(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, token string) error
}

type UserRepository interface {
	CreateIdentity(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	CreateProfile(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, fullName string, role user.Role) error
	DeleteIdentity(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, bookingID, authorID uuid.UUID, body string) (*queries.CommentView, error)
}
