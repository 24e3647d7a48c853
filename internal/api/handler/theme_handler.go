package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautiflow/dashboard-api/internal/api/metrics"
	"github.com/beautiflow/dashboard-api/internal/core/domain"
	"github.com/beautiflow/dashboard-api/internal/core/ports"
)

// ThemeHandler exposes the theme registry: the predefined catalog, the
// user's custom palettes, and the active theme state.
type ThemeHandler struct {
	service ports.ThemeService
}

func NewThemeHandler(service ports.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

func toCatalogResponse(state *ports.ThemeState) themeCatalogResponse {
	return themeCatalogResponse{
		Predefined:   domain.PredefinedThemes,
		Custom:       state.Settings.Custom,
		Current:      state.Settings.Current,
		CSSVariables: state.CSSVariables,
		Dark:         state.Dark,
	}
}

// Get handles GET /v1/themes.
//
// @Summary      Get the theme catalog and active theme state
// @Tags         themes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  themeCatalogResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/themes [get]
func (h *ThemeHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	state, err := h.service.State(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatalogResponse(state))
}

// SetActive handles PUT /v1/themes/active.
//
// @Summary      Activate a theme
// @Tags         themes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setThemeRequest  true  "Theme to activate"
// @Success      200   {object}  themeCatalogResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/themes/active [put]
func (h *ThemeHandler) SetActive(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req setThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	state, err := h.service.SetTheme(c.Request().Context(), sess.UserID, req.ThemeID)
	if err != nil {
		return err
	}

	label := req.ThemeID
	if state.Settings.Current.IsCustom {
		label = "custom"
	}
	metrics.ThemesAppliedTotal.WithLabelValues(label).Inc()

	return c.JSON(http.StatusOK, toCatalogResponse(state))
}

// CreateCustom handles POST /v1/themes/custom. The new palette is stored
// but not activated.
//
// @Summary      Create a custom theme
// @Tags         themes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createThemeRequest  true  "Custom palette"
// @Success      201   {object}  domain.Theme
// @Failure      400   {object}  errorResponse
// @Router       /v1/themes/custom [post]
func (h *ThemeHandler) CreateCustom(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	theme, err := h.service.CreateCustomTheme(c.Request().Context(), sess.UserID, req.Name, req.Colors.toColors(), req.IsDark)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, theme)
}

// UpdateCustom handles PATCH /v1/themes/custom/:id.
//
// @Summary      Update a custom theme
// @Tags         themes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Custom theme id"
// @Param        body  body      updateThemeRequest  true  "Fields to merge"
// @Success      200   {object}  themeCatalogResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/themes/custom/{id} [patch]
func (h *ThemeHandler) UpdateCustom(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.ThemeUpdate{Name: req.Name, IsDark: req.IsDark}
	if req.Colors != nil {
		colors := req.Colors.toColors()
		patch.Colors = &colors
	}

	state, err := h.service.UpdateCustomTheme(c.Request().Context(), sess.UserID, c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatalogResponse(state))
}

// DeleteCustom handles DELETE /v1/themes/custom/:id. Deleting the active
// theme falls back to the first predefined theme.
//
// @Summary      Delete a custom theme
// @Tags         themes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Custom theme id"
// @Success      200  {object}  themeCatalogResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/themes/custom/{id} [delete]
func (h *ThemeHandler) DeleteCustom(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	state, err := h.service.DeleteCustomTheme(c.Request().Context(), sess.UserID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatalogResponse(state))
}
