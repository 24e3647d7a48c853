package ports

import (
	"context"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// Session is the resolved identity attached to a request: who is calling
// and which role claim they carry. An empty Role means the claim never
// loaded and role-gated operations must fail closed.
type Session struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
