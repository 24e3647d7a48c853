package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautiflow/dashboard-api/internal/api/metrics"
	"github.com/beautiflow/dashboard-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for the client registry.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /v1/clients.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listClientsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]clientResponse, len(clients))
	for i, cl := range clients {
		out[i] = toClientResponse(cl)
	}
	return c.JSON(http.StatusOK, listClientsResponse{Data: out})
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get one client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(*client))
}

// Create handles POST /v1/clients.
//
// @Summary      Register a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:       req.Name,
		Phone:      req.Phone,
		FlatNumber: req.FlatNumber,
		TrustScore: req.TrustScore,
		Tags:       req.Tags,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toClientResponse(*client))
}

// ListTransactions handles GET /v1/clients/:id/transactions.
//
// @Summary      List one client's transaction history
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  listTransactionsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/clients/{id}/transactions [get]
func (h *ClientHandler) ListTransactions(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	txs, err := h.service.ListTransactions(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionsResponse(txs))
}

// AddTransaction handles POST /v1/clients/:id/transactions.
//
// @Summary      Append a transaction to a client's history
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Client id"
// @Param        body  body      addTransactionRequest  true  "Transaction details"
// @Success      201   {object}  transactionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id}/transactions [post]
func (h *ClientHandler) AddTransaction(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req addTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	tx, err := h.service.AddTransaction(c.Request().Context(), sess, ports.AddTransactionInput{
		ClientID:    c.Param("id"),
		ServiceName: req.ServiceName,
		Amount:      req.Amount,
		IsPaid:      req.IsPaid,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}

	metrics.TransactionsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTransactionResponse(*tx))
}

// MarkPaid handles PATCH /v1/transactions/:id/pay.
//
// @Summary      Mark a transaction as paid
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transaction id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /v1/transactions/{id}/pay [patch]
func (h *ClientHandler) MarkPaid(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkPaid(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "paid"})
}

// ListFlats handles GET /v1/flats.
//
// @Summary      Group clients by flat number
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listFlatsResponse
// @Router       /v1/flats [get]
func (h *ClientHandler) ListFlats(c echo.Context) error {
	flats, err := h.service.ListFlats(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]flatSummaryResponse, len(flats))
	for i, f := range flats {
		out[i] = flatSummaryResponse{FlatNumber: f.FlatNumber, ClientCount: f.ClientCount}
	}
	return c.JSON(http.StatusOK, listFlatsResponse{Data: out})
}
