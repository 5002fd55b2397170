package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/algoroadmap/roadmap-server/internal/mocks"
	"github.com/algoroadmap/roadmap-server/internal/model"
	"github.com/algoroadmap/roadmap-server/internal/testutil"
)

func TestAuth_Register_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	us := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)

	us.On("GetByEmail", mock.Anything, "ada@example.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "lovelace").Return("hashed", nil)
	us.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "ada@example.com" && u.Name == "Ada" && u.PasswordHash == "hashed"
	})).Return(model.User{ID: userID, Name: "Ada", Email: "ada@example.com"}, nil)
	tokens.On("Issue", userID).Return("token", nil)

	svc := NewAuth(us, hasher, tokens, testutil.MakeNoopLogger())

	session, err := svc.Register(context.Background(), model.RegisterParams{
		Name:     "Ada",
		Email:    "  Ada@Example.com ",
		Password: "lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, session.User.ID)
	assert.Equal(t, "token", session.Token)
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	us := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)

	us.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(model.User{ID: uuid.New(), Email: "ada@example.com"}, nil)

	svc := NewAuth(us, hasher, tokens, testutil.MakeNoopLogger())

	_, err := svc.Register(context.Background(), model.RegisterParams{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "lovelace",
	})
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Register_ConcurrentEmailTaken(t *testing.T) {
	t.Parallel()

	us := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)

	us.On("GetByEmail", mock.Anything, "ada@example.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "lovelace").Return("hashed", nil)
	us.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Return(model.User{}, model.ErrEmailTaken)

	svc := NewAuth(us, hasher, tokens, testutil.MakeNoopLogger())

	_, err := svc.Register(context.Background(), model.RegisterParams{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "lovelace",
	})
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Register_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params model.RegisterParams
	}{
		{
			name:   "missing name",
			params: model.RegisterParams{Name: "  ", Email: "ada@example.com", Password: "lovelace"},
		},
		{
			name:   "missing email",
			params: model.RegisterParams{Name: "Ada", Password: "lovelace"},
		},
		{
			name:   "malformed email",
			params: model.RegisterParams{Name: "Ada", Email: "not-an-email", Password: "lovelace"},
		},
		{
			name:   "display name form",
			params: model.RegisterParams{Name: "Ada", Email: "Ada <ada@example.com>", Password: "lovelace"},
		},
		{
			name:   "short password",
			params: model.RegisterParams{Name: "Ada", Email: "ada@example.com", Password: "ada"},
		},
		{
			name:   "oversized password",
			params: model.RegisterParams{Name: "Ada", Email: "ada@example.com", Password: string(make([]byte, 80))},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewAuth(mocks.NewUserStore(t), mocks.NewPasswordHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())

			_, err := svc.Register(context.Background(), tt.params)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestAuth_Login_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	user := model.User{ID: userID, Email: "ada@example.com", PasswordHash: "hashed"}

	us := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokens := mocks.NewTokenManager(t)

	us.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil)
	hasher.On("Verify", "lovelace", "hashed").Return(true)
	tokens.On("Issue", userID).Return("token", nil)

	svc := NewAuth(us, hasher, tokens, testutil.MakeNoopLogger())

	session, err := svc.Login(context.Background(), model.LoginParams{
		Email:    "Ada@Example.com",
		Password: "lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, session.User.ID)
	assert.Equal(t, "token", session.Token)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	us := mocks.NewUserStore(t)

	us.On("GetByEmail", mock.Anything, "ghost@example.com").Return(model.User{}, model.ErrNotFound)

	svc := NewAuth(us, mocks.NewPasswordHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())

	_, err := svc.Login(context.Background(), model.LoginParams{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	us := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)

	us.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(model.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
	hasher.On("Verify", "wrong", "hashed").Return(false)

	svc := NewAuth(us, hasher, mocks.NewTokenManager(t), testutil.MakeNoopLogger())

	_, err := svc.Login(context.Background(), model.LoginParams{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_StoreError(t *testing.T) {
	t.Parallel()

	us := mocks.NewUserStore(t)

	us.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(model.User{}, errors.New("connection reset"))

	svc := NewAuth(us, mocks.NewPasswordHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())

	_, err := svc.Login(context.Background(), model.LoginParams{
		Email:    "ada@example.com",
		Password: "lovelace",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}
