package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// stubUserRepo keys users by email and assigns sequential ids on create.
type stubUserRepo struct {
	users     map[string]*domain.User
	createErr error
	nextID    int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, dup := r.users[user.Email]; dup {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = "user_" + string(rune('0'+r.nextID))
	r.nextID++
	r.users[user.Email] = &clone
	out := clone
	return &out, nil
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter2", domain.RoleManager)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("registered user has no id")
	}
	if created.PasswordHash == "hunter2" {
		t.Fatalf("password stored in plain text")
	}

	token, user, err := svc.Login(ctx, "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("login returned wrong user: %q", user.Email)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["uid"] != created.ID {
		t.Fatalf("uid claim: got %v, want %v", claims["uid"], created.ID)
	}
	if claims["role"] != domain.RoleManager {
		t.Fatalf("role claim: got %v", claims["role"])
	}
	if claims["email"] != "alice@example.com" {
		t.Fatalf("email claim: got %v", claims["email"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Fatalf("exp claim missing")
	}
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pw", "superuser")
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_RegisterEmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Bob", "", "pw", domain.RoleEmployee); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "", domain.RoleEmployee); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "pw", domain.RoleAdmin); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, "Alice2", "alice@example.com", "pw", domain.RoleAdmin)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Alice", "alice@example.com", "correct", domain.RoleEmployee); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := svc.Login(ctx, "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
