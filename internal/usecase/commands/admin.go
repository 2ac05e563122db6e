package commands

import (
	"context"
	"log/slog"

	"booking-crm/internal/domain/user"
	reqdto "booking-crm/internal/handler/dto/request"
	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/pkg/errs"
	"booking-crm/internal/pkg/password"
	"booking-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail     = errs.New("email already registered")
	ErrWeakPassword       = errs.New("password does not meet minimum length")
	ErrInvalidRole        = errs.New("role is not in the allow-list")
	ErrUserCreationFailed = errs.New("user creation failed")
)

const generatedPasswordLength = 12

// Password carries the plaintext back to the admin exactly once, so it can
// be handed to the new staff member.
type CreateUserResult struct {
	UserID   uuid.UUID
	Email    string
	Role     user.Role
	Password string
}

type AdminCommands interface {
	CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (*CreateUserResult, error)
	ResetPassword(ctx context.Context, req reqdto.ResetPasswordRequest) error
}

type adminCommandsImpl struct {
	uow      shared.UnitOfWork
	userRepo shared.UserRepository
}

func NewAdminCommands(uow shared.UnitOfWork, userRepo shared.UserRepository) AdminCommands {
	return &adminCommandsImpl{
		uow:      uow,
		userRepo: userRepo,
	}
}

// CreateUser provisions the auth identity and the staff profile as two
// separate writes. Identity and profile live in different stores upstream
// of this service's schema, so the pair is reconciled manually: a profile
// failure deletes the identity it just created.
func (a *adminCommandsImpl) CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (*CreateUserResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	fullName, err := user.NewFullName(req.FullName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRole)
	}

	plain := req.Password
	if plain == "" {
		plain, err = password.Generate(generatedPasswordLength)
		if err != nil {
			return nil, errs.Mark(err, ErrUserCreationFailed)
		}
	}
	pw, err := user.NewPassword(plain)
	if err != nil {
		return nil, errs.Mark(err, ErrWeakPassword)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrUserCreationFailed)
	}

	newUser := user.NewUser(email, hash, role)

	var userID uuid.UUID
	err = a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		id, createErr := a.userRepo.CreateIdentity(ctx, dbtx, newUser)
		if createErr != nil {
			return createErr
		}
		userID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Mark(err, ErrUserCreationFailed)
	}

	err = a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		profileErr := a.userRepo.CreateProfile(ctx, dbtx, userID, fullName.Value(), role)
		if profileErr != nil && infra.IsKind(profileErr, infra.KindCheckViolated) && role != user.FallbackRole {
			// Store-side role constraint can lag the application enum;
			// retry once with the fallback before giving up.
			role = user.FallbackRole
			profileErr = a.userRepo.CreateProfile(ctx, dbtx, userID, fullName.Value(), role)
		}
		return profileErr
	})
	if err != nil {
		a.rollbackIdentity(ctx, userID)
		return nil, errs.Mark(err, ErrUserCreationFailed)
	}

	return &CreateUserResult{
		UserID:   userID,
		Email:    email.Value(),
		Role:     role,
		Password: pw.Value(),
	}, nil
}

func (a *adminCommandsImpl) ResetPassword(ctx context.Context, req reqdto.ResetPasswordRequest) error {
	pw, err := user.NewPassword(req.NewPassword)
	if err != nil {
		return errs.Mark(err, ErrWeakPassword)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return err
	}

	err = a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return a.userRepo.UpdatePassword(ctx, dbtx, req.UserID, hash)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (a *adminCommandsImpl) rollbackIdentity(ctx context.Context, userID uuid.UUID) {
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return a.userRepo.DeleteIdentity(ctx, dbtx, userID)
	})
	if err != nil {
		// An identity without a profile needs manual cleanup.
		slog.Error("failed to roll back user identity",
			"user_id", userID.String(),
			"error", err.Error())
	}
}
