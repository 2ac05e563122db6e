package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"booking-crm/internal/infra/db"
	"booking-crm/internal/infra/readstore"
	"booking-crm/internal/infra/repository"
	"booking-crm/internal/pkg/errs"
	"booking-crm/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// Repositories hold no state of their own; the transaction handle is
// threaded through each call via DB().
type pgTx struct {
	dbtx db.DBTX

	bookingRepo      shared.BookingRepository
	tokenRepo        shared.BookingTokenRepository
	confirmationRepo shared.ConfirmationRepository
	userRepo         shared.UserRepository
	commentRepo      shared.CommentRepository
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

// Savepoint nests a pseudo transaction (SAVEPOINT under pgx). Without it a
// rejected statement leaves the whole transaction in aborted state and the
// final commit rolls everything back.
func (t *pgTx) Savepoint(ctx context.Context, fn func(dbtx db.DBTX) error) error {
	pgxTx, ok := t.dbtx.(pgx.Tx)
	if !ok {
		return fn(t.dbtx)
	}

	nested, err := pgxTx.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err := fn(nested); err != nil {
		if rollbackErr := nested.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("savepoint rollback failed", "error", rollbackErr.Error())
		}
		return err
	}

	return nested.Commit(ctx)
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Tokens() shared.BookingTokenRepository {
	if t.tokenRepo == nil {
		t.tokenRepo = repository.NewBookingTokenRepository()
	}
	return t.tokenRepo
}

func (t *pgTx) Confirmations() shared.ConfirmationRepository {
	if t.confirmationRepo == nil {
		t.confirmationRepo = repository.NewConfirmationRepository()
	}
	return t.confirmationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Comments() shared.CommentRepository {
	if t.commentRepo == nil {
		t.commentRepo = repository.NewCommentRepository()
	}
	return t.commentRepo
}

type commandReads struct {
	dbtx db.DBTX

	bookingStore  *readstore.BookingReadStore
	customerStore *readstore.CustomerReadStore
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore()
	}

	return r.bookingStore.SnapshotByID(ctx, r.dbtx, id)
}

func (r *commandReads) CustomerByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	if r.customerStore == nil {
		r.customerStore = readstore.NewCustomerReadStore()
	}

	return r.customerStore.SnapshotByID(ctx, r.dbtx, id)
}
