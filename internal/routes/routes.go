package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/okapi-fin/okapi/internal/bank"
	"github.com/okapi-fin/okapi/internal/config"
	"github.com/okapi-fin/okapi/internal/identity"
	"github.com/okapi-fin/okapi/internal/kyc"
	"github.com/okapi-fin/okapi/internal/ledger"
	"github.com/okapi-fin/okapi/internal/middleware"
	"github.com/okapi-fin/okapi/internal/notification"
	"github.com/okapi-fin/okapi/internal/payments"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Without a
// database the app runs on in-memory repositories, which is only allowed
// in dev environments.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var (
		userRepo   identity.Repository
		bankRepo   bank.Repository
		kycRepo    kyc.Repository
		ledgerRepo ledger.Repository
	)
	if d.DB != nil {
		userRepo = identity.NewPostgresRepository(d.DB)
		bankRepo = bank.NewPostgresRepository(d.DB)
		kycRepo = kyc.NewPostgresRepository(d.DB)
		ledgerRepo = ledger.NewPostgresRepository(d.DB)
	} else {
		userRepo = identity.NewMemoryRepository()
		bankRepo = bank.NewMemoryRepository()
		kycRepo = kyc.NewMemoryRepository()
		ledgerRepo = ledger.NewInMemory()
	}

	notifier := notification.NewLoggerNotifier(d.Logger)
	identitySvc := identity.NewService(userRepo, notifier)
	bankSvc := bank.NewService(bankRepo, userRepo)
	kycSvc := kyc.NewService(kycRepo, userRepo)
	ledgerSvc := ledger.NewService(ledgerRepo)
	paymentSvc := payments.NewService(notifier)

	identityHandler := identity.NewHandler(identitySvc, ledgerSvc)
	bankHandler := bank.NewHandler(bankSvc)
	kycHandler := kyc.NewHandler(kycSvc)
	ledgerHandler := ledger.NewHandler(ledgerSvc)
	paymentHandler := payments.NewHandler(paymentSvc)

	api := app.Group("/v1")

	RegisterAuthRoutes(api, identityHandler)
	RegisterUserRoutes(api, identityHandler)
	codeLimiter := middleware.CodeRequestRateLimit(d.Cache, d.Cfg.CodeRequestsPerMinute)
	RegisterBankRoutes(api, bankHandler, codeLimiter)
	RegisterKYCRoutes(api, kycHandler)
	RegisterDashboardRoutes(api, ledgerHandler, paymentHandler)

	return nil
}
