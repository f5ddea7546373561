package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/domains/user"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/jwt"
)

type mockUserRepo struct {
	CreateFn      func(ctx context.Context, u *user.User) (*user.User, error)
	FindByEmailFn func(ctx context.Context, email string) (*user.User, error)
	FindByIDFn    func(ctx context.Context, id int64) (*user.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	return m.CreateFn(ctx, u)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.FindByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return m.FindByIDFn(ctx, id)
}

func testJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 6*time.Hour)
}

func TestRegister_HashesPassword(t *testing.T) {
	var stored *user.User
	repo := &mockUserRepo{
		CreateFn: func(ctx context.Context, u *user.User) (*user.User, error) {
			u.ID = 1
			u.CreatedAt = time.Now()
			stored = u
			return u, nil
		},
	}
	svc := NewUserService(repo, testJWTManager())

	dto, err := svc.Register(context.Background(), user.RegisterRequest{
		Email:    "ana@example.com",
		Password: "s3nh4-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", dto.Email)

	require.NotNil(t, stored)
	assert.NotEqual(t, "s3nh4-forte", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3nh4-forte")))
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, testJWTManager())

	tests := []struct {
		name string
		req  user.RegisterRequest
	}{
		{"missing email", user.RegisterRequest{Password: "password1"}},
		{"malformed email", user.RegisterRequest{Email: "not-an-email", Password: "password1"}},
		{"short password", user.RegisterRequest{Email: "ana@example.com", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		CreateFn: func(ctx context.Context, u *user.User) (*user.User, error) {
			return nil, user.ErrEmailAlreadyExists
		},
	}
	svc := NewUserService(repo, testJWTManager())

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Email:    "ana@example.com",
		Password: "s3nh4-forte",
	})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func userWithPassword(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &user.User{ID: 1, Email: "ana@example.com", PasswordHash: string(hash)}
}

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return userWithPassword(t, "s3nh4-forte"), nil
		},
	}
	manager := testJWTManager()
	svc := NewUserService(repo, manager)

	res, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3nh4-forte",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	// The token identifies the user
	claims, err := manager.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return userWithPassword(t, "s3nh4-forte"), nil
		},
	}
	svc := NewUserService(repo, testJWTManager())

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ana@example.com",
		Password: "errada",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	repo := &mockUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, user.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, testJWTManager())

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ninguem@example.com",
		Password: "qualquer",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetProfile(t *testing.T) {
	repo := &mockUserRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*user.User, error) {
			return &user.User{ID: id, Email: "ana@example.com", PasswordHash: "hash"}, nil
		},
	}
	svc := NewUserService(repo, testJWTManager())

	dto, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, "ana@example.com", dto.Email)
}
