// Package webapi assembles the Fiber applications for the two services.
package webapi

import (
	"github.com/amirasaad/payflow/infra/initializer"
	"github.com/amirasaad/payflow/pkg/config"
	identitysvc "github.com/amirasaad/payflow/pkg/service/identity"
	paymentsvc "github.com/amirasaad/payflow/pkg/service/payment"
	"github.com/amirasaad/payflow/webapi/auth"
	"github.com/amirasaad/payflow/webapi/common"
	"github.com/amirasaad/payflow/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewPaymentApp builds the payment service HTTP application.
func NewPaymentApp(deps *initializer.PaymentDeps, cfg *config.App) *fiber.App {
	app := newApp(cfg, deps.LimiterStorage)
	paymentSvc := paymentsvc.New(deps.Uow, deps.Processor, deps.Logger)
	transaction.Routes(app, paymentSvc, cfg)
	return app
}

// NewUserApp builds the user service HTTP application.
func NewUserApp(deps *initializer.UserDeps, cfg *config.App) *fiber.App {
	app := newApp(cfg, deps.LimiterStorage)
	identitySvc := identitysvc.New(deps.Identity, deps.Logger)
	auth.Routes(app, identitySvc)
	return app
}

func newApp(cfg *config.App, limiterStorage fiber.Storage) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", nil, status)
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		Storage:    limiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", nil,
				"Rate limit exceeded", fiber.StatusTooManyRequests)
		},
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}
