//go:build unit

package commands_test

import (
	"context"
	"testing"

	"booking-crm/internal/domain/user"
	reqdto "booking-crm/internal/handler/dto/request"
	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileCall struct {
	userID   uuid.UUID
	fullName string
	role     user.Role
}

type fakeUserRepo struct {
	identityID  uuid.UUID
	identityErr error

	profileCalls []profileCall
	// profileErrs is consumed one per CreateProfile call, nil once drained.
	profileErrs []error

	deleted []uuid.UUID

	passwordHashes map[uuid.UUID]string
	passwordErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		identityID:     uuid.New(),
		passwordHashes: map[uuid.UUID]string{},
	}
}

func (f *fakeUserRepo) CreateIdentity(_ context.Context, _ db.DBTX, _ *user.User) (uuid.UUID, error) {
	if f.identityErr != nil {
		return uuid.Nil, f.identityErr
	}
	return f.identityID, nil
}

func (f *fakeUserRepo) CreateProfile(_ context.Context, _ db.DBTX, userID uuid.UUID, fullName string, role user.Role) error {
	f.profileCalls = append(f.profileCalls, profileCall{userID: userID, fullName: fullName, role: role})
	if len(f.profileErrs) > 0 {
		err := f.profileErrs[0]
		f.profileErrs = f.profileErrs[1:]
		return err
	}
	return nil
}

func (f *fakeUserRepo) DeleteIdentity(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, _ db.DBTX, userID uuid.UUID, hash string) error {
	if f.passwordErr != nil {
		return f.passwordErr
	}
	f.passwordHashes[userID] = hash
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

func createUserRequest() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Email:    "ny.saljare@example.se",
		Password: "hemligt1",
		FullName: "Nya Säljaren",
		Role:     "sales",
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("creates identity and profile", func(t *testing.T) {
		repo := newFakeUserRepo()
		cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

		result, err := cmd.CreateUser(context.Background(), createUserRequest())
		require.NoError(t, err)

		assert.Equal(t, repo.identityID, result.UserID)
		assert.Equal(t, "ny.saljare@example.se", result.Email)
		assert.Equal(t, user.RoleSales, result.Role)
		assert.Equal(t, "hemligt1", result.Password)
		require.Len(t, repo.profileCalls, 1)
		assert.Equal(t, "Nya Säljaren", repo.profileCalls[0].fullName)
		assert.Empty(t, repo.deleted)
	})

	t.Run("generates a password when none is given", func(t *testing.T) {
		repo := newFakeUserRepo()
		cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

		req := createUserRequest()
		req.Password = ""
		result, err := cmd.CreateUser(context.Background(), req)
		require.NoError(t, err)

		assert.Len(t, result.Password, 12)
		require.Len(t, repo.profileCalls, 1)
	})

	t.Run("rejects roles outside the allow-list", func(t *testing.T) {
		for _, role := range []string{"superadmin", "owner", ""} {
			repo := newFakeUserRepo()
			cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

			req := createUserRequest()
			req.Role = role
			_, err := cmd.CreateUser(context.Background(), req)
			assert.ErrorIs(t, err, commands.ErrInvalidRole, "role %q", role)
			assert.Empty(t, repo.profileCalls)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.identityErr = infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

		_, err := cmd.CreateUser(context.Background(), createUserRequest())
		assert.ErrorIs(t, err, commands.ErrDuplicateEmail)
		assert.Empty(t, repo.profileCalls)
	})

	t.Run("check violation retries once with fallback role", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.profileErrs = []error{infra.WrapRepoErr("role check failed", nil, infra.KindCheckViolated)}
		cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

		req := createUserRequest()
		req.Role = "printer"
		result, err := cmd.CreateUser(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, repo.profileCalls, 2)
		assert.Equal(t, user.RolePrinter, repo.profileCalls[0].role)
		assert.Equal(t, user.FallbackRole, repo.profileCalls[1].role)
		assert.Equal(t, user.FallbackRole, result.Role)
		assert.Empty(t, repo.deleted)
	})

	t.Run("profile failure rolls back identity", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.profileErrs = []error{
			infra.WrapRepoErr("profile insert failed", nil, infra.KindDBFailure),
		}
		cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

		_, err := cmd.CreateUser(context.Background(), createUserRequest())
		require.ErrorIs(t, err, commands.ErrUserCreationFailed)
		assert.Equal(t, []uuid.UUID{repo.identityID}, repo.deleted)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*reqdto.CreateUserRequest)
			errIs  error
		}{
			{name: "short password", mutate: func(r *reqdto.CreateUserRequest) { r.Password = "kort1" }, errIs: commands.ErrWeakPassword},
			{name: "invalid email", mutate: func(r *reqdto.CreateUserRequest) { r.Email = "inte-en-adress" }, errIs: commands.ErrDomainValidation},
			{name: "blank full name", mutate: func(r *reqdto.CreateUserRequest) { r.FullName = "   " }, errIs: commands.ErrDomainValidation},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := newFakeUserRepo()
				cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

				req := createUserRequest()
				tc.mutate(&req)
				_, err := cmd.CreateUser(context.Background(), req)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Empty(t, repo.profileCalls)
			})
		}
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("updates password hash", func(t *testing.T) {
		repo := newFakeUserRepo()
		cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

		userID := uuid.New()
		err := cmd.ResetPassword(context.Background(), reqdto.ResetPasswordRequest{UserID: userID, NewPassword: "nyttlosen"})
		require.NoError(t, err)

		hash, ok := repo.passwordHashes[userID]
		require.True(t, ok)
		// Bcrypt output, never the plaintext.
		assert.NotEqual(t, "nyttlosen", hash)
		assert.NotEmpty(t, hash)
	})

	t.Run("rejects passwords under six characters", func(t *testing.T) {
		repo := newFakeUserRepo()
		cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

		err := cmd.ResetPassword(context.Background(), reqdto.ResetPasswordRequest{UserID: uuid.New(), NewPassword: "fem55"})
		assert.ErrorIs(t, err, commands.ErrWeakPassword)
		assert.Empty(t, repo.passwordHashes)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.passwordErr = infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
		cmd := commands.NewAdminCommands(&fakeUoW{}, repo)

		err := cmd.ResetPassword(context.Background(), reqdto.ResetPasswordRequest{UserID: uuid.New(), NewPassword: "nyttlosen"})
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
