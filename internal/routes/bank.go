package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okapi-fin/okapi/internal/bank"
)

// RegisterBankRoutes wires the bank-link verification endpoints. The code
// issuing endpoint sits behind the per-account rate limiter.
func RegisterBankRoutes(r fiber.Router, h *bank.Handler, codeLimiter fiber.Handler) {
	group := r.Group("/ba")
	group.Post("/link/:userId", h.Link)
	if codeLimiter != nil {
		group.Post("/set-verification-code/:bankAccountId", codeLimiter, h.SetVerificationCode)
	} else {
		group.Post("/set-verification-code/:bankAccountId", h.SetVerificationCode)
	}
	group.Post("/verify/:bankAccountId", h.Verify)
}
