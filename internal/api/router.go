package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beautiflow/dashboard-api/internal/api/handler"
	"github.com/beautiflow/dashboard-api/internal/api/middleware"
	"github.com/beautiflow/dashboard-api/internal/core/domain"
	"github.com/beautiflow/dashboard-api/internal/core/service"
	"github.com/beautiflow/dashboard-api/internal/infrastructure/cache"
	mongodb "github.com/beautiflow/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/beautiflow/dashboard-api/internal/infrastructure/db/redis"
)

const clientsCacheTTL = 5 * time.Minute

// NewRouter builds the Echo instance with all routes registered. Guarded
// route groups read their allowed-role sets from the single route table in
// domain, so permission checks live at one boundary instead of being
// scattered per handler.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("beautiflow"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	txRepo := mongodb.NewTransactionRepository(db)
	themeStore := redisdb.NewThemeStore(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	clientService := service.NewClientService(clientRepo, txRepo, cache.New[[]domain.Client](clientsCacheTTL), log)
	financeService := service.NewFinanceService(clientService, txRepo, log)
	themeService := service.NewThemeService(themeStore, log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	financeHandler := handler.NewFinanceHandler(financeService)
	themeHandler := handler.NewThemeHandler(themeService)
	navigationHandler := handler.NewNavigationHandler()

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated surface ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/auth/me", authHandler.Me)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/navigation", navigationHandler.Get)

	// Dashboard is open to any authenticated role.
	v1.GET("/dashboard", financeHandler.Dashboard, middleware.RBAC(domain.AllowedRoles("/dashboard")...))

	// Client registry management follows the /clients route roles.
	clients := v1.Group("/clients", middleware.RBAC(domain.AllowedRoles("/clients")...))
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/:id", clientHandler.Get)

	// Transaction history is open to any authenticated role: the data
	// scope (shared vs private store) is resolved per session inside the
	// service, so isolation does not depend on the route guard here.
	v1.GET("/clients/:id/transactions", clientHandler.ListTransactions)
	v1.POST("/clients/:id/transactions", clientHandler.AddTransaction)
	v1.PATCH("/transactions/:id/pay", clientHandler.MarkPaid)

	v1.GET("/flats", clientHandler.ListFlats, middleware.RBAC(domain.AllowedRoles("/flats")...))

	finances := v1.Group("/finances", middleware.RBAC(domain.AllowedRoles("/finances")...))
	finances.GET("", financeHandler.List)
	finances.GET("/stats", financeHandler.Stats)
	finances.GET("/upcoming", financeHandler.Upcoming)

	// Themes are available regardless of route or role.
	themes := v1.Group("/themes")
	themes.GET("", themeHandler.Get)
	themes.PUT("/active", themeHandler.SetActive)
	themes.POST("/custom", themeHandler.CreateCustom)
	themes.PATCH("/custom/:id", themeHandler.UpdateCustom)
	themes.DELETE("/custom/:id", themeHandler.DeleteCustom)

	return e
}
