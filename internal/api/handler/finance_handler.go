package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/beautiflow/dashboard-api/internal/core/finance"
	"github.com/beautiflow/dashboard-api/internal/core/ports"
)

// FinanceHandler exposes the filtered/sorted finances view, the summary
// statistics, and the upcoming-payments list.
type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

const dayFormat = "2006-01-02"

// parseQuery maps the finances query string to a service query. Unknown or
// empty values fall back to the widest view (all transactions, date
// ascending), matching the default state of the finances screen.
func parseQuery(c echo.Context) (ports.ListTransactionsQuery, error) {
	q := ports.ListTransactionsQuery{
		Filter: finance.Filter{Range: finance.RangeAll, Status: finance.StatusAll},
		SortBy: finance.SortByDate,
		Order:  finance.OrderAsc,
	}

	switch r := finance.DateRange(c.QueryParam("range")); r {
	case finance.RangeToday, finance.RangeThisWeek, finance.RangeThisMonth:
		q.Filter.Range = r
	case finance.RangeCustom:
		from, err := time.Parse(dayFormat, c.QueryParam("from"))
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "from must be a YYYY-MM-DD date")
		}
		to, err := time.Parse(dayFormat, c.QueryParam("to"))
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "to must be a YYYY-MM-DD date")
		}
		q.Filter.Range = finance.RangeCustom
		q.Filter.From = from
		q.Filter.To = to
	}

	switch s := finance.Status(c.QueryParam("status")); s {
	case finance.StatusPaid, finance.StatusPending:
		q.Filter.Status = s
	}

	switch k := finance.SortKey(c.QueryParam("sort_by")); k {
	case finance.SortByAmount, finance.SortByClientName, finance.SortByServiceName:
		q.SortBy = k
	}

	if finance.SortOrder(c.QueryParam("order")) == finance.OrderDesc {
		q.Order = finance.OrderDesc
	}

	return q, nil
}

// List handles GET /v1/finances.
//
// @Summary      List transactions with filters and sorting
// @Tags         finances
// @Produce      json
// @Security     BearerAuth
// @Param        range    query     string  false  "all | today | this_week | this_month | custom"
// @Param        from     query     string  false  "Custom range start (YYYY-MM-DD, inclusive)"
// @Param        to       query     string  false  "Custom range end (YYYY-MM-DD, inclusive)"
// @Param        status   query     string  false  "all | paid | pending"
// @Param        sort_by  query     string  false  "date | amount | client_name | service_name"
// @Param        order    query     string  false  "asc | desc"
// @Success      200      {object}  listTransactionsResponse
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /v1/finances [get]
func (h *FinanceHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	q, err := parseQuery(c)
	if err != nil {
		return err
	}

	txs, err := h.service.List(c.Request().Context(), sess, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionsResponse(txs))
}

// Stats handles GET /v1/finances/stats.
//
// @Summary      Summary statistics over the full transaction set
// @Tags         finances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  finance.Stats
// @Failure      403  {object}  errorResponse
// @Router       /v1/finances/stats [get]
func (h *FinanceHandler) Stats(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Upcoming handles GET /v1/finances/upcoming.
//
// @Summary      Unpaid transactions due within seven days
// @Tags         finances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTransactionsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/finances/upcoming [get]
func (h *FinanceHandler) Upcoming(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	txs, err := h.service.Upcoming(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionsResponse(txs))
}

// Dashboard handles GET /v1/dashboard.
//
// @Summary      Dashboard overview
// @Tags         finances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Overview
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *FinanceHandler) Dashboard(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	overview, err := h.service.Dashboard(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
