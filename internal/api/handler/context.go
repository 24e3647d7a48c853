package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautiflow/dashboard-api/internal/core/ports"
)

// ctxSession extracts the identity claims injected by the Auth middleware
// and performs a fast-fail check before any service call: uid and role must
// both be non-empty. A token without a role claim is structurally valid but
// operationally unusable, and everything role-gated must fail closed.
func ctxSession(c echo.Context) (ports.Session, error) {
	uid, _ := c.Get("uid").(string)
	role, _ := c.Get("role").(string)
	if uid == "" || role == "" {
		return ports.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	email, _ := c.Get("email").(string)

	return ports.Session{UserID: uid, Name: name, Email: email, Role: role}, nil
}
