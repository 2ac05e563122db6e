package repository

import (
	"context"

	"booking-crm/internal/domain/user"
	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createIdentitySQL = `
INSERT INTO users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *UserRepository) CreateIdentity(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createIdentitySQL,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user identity", err)
	}
	return id, nil
}

const createProfileSQL = `
INSERT INTO user_profiles (id, user_id, full_name, role)
VALUES ($1, $2, $3, $4)`

func (r *UserRepository) CreateProfile(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, fullName string, role user.Role) error {
	_, err := dbtx.Exec(ctx, createProfileSQL, uuid.New(), userID, fullName, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to create user profile", err)
	}
	return nil
}

const deleteIdentitySQL = `DELETE FROM users WHERE id = $1`

func (r *UserRepository) DeleteIdentity(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, deleteIdentitySQL, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user identity", err)
	}
	return nil
}

const updatePasswordSQL = `
UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdatePassword(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, passwordHash string) error {
	tag, err := dbtx.Exec(ctx, updatePasswordSQL, userID, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, updateLastLoginSQL, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
