package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautiflow/dashboard-api/internal/core/domain"
)

// NavigationHandler serves the role-gated navigation: which dashboard
// routes the current role may view.
type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

type navigationResponse struct {
	Role   string   `json:"role"`
	Routes []string `json:"routes"`
}

// Get handles GET /v1/navigation.
//
// @Summary      Routes visible to the current role
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, navigationResponse{
		Role:   sess.Role,
		Routes: domain.AccessibleRoutes(sess.Role),
	})
}
