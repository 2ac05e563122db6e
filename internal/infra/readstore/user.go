package readstore

import (
	"context"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/pkg/pgconv"
	"booking-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct{}

func NewUserReadStore() *UserReadStore {
	return &UserReadStore{}
}

const userByEmailSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = $1`

// FindByEmail also returns the password hash for the login flow; the hash
// never crosses the handler boundary.
func (s *UserReadStore) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := dbtx.QueryRow(ctx, userByEmailSQL, email).Scan(
		&view.ID,
		&view.Email,
		&hash,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

const userByIDSQL = `
SELECT id, email, role, is_active
FROM users
WHERE id = $1`

func (s *UserReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := dbtx.QueryRow(ctx, userByIDSQL, id).Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}
