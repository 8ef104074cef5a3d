package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okapi-fin/okapi/internal/ledger"
	"github.com/okapi-fin/okapi/internal/payments"
)

// RegisterDashboardRoutes wires the balance read path and the money-movement
// stubs.
func RegisterDashboardRoutes(r fiber.Router, lh *ledger.Handler, ph *payments.Handler) {
	group := r.Group("/dashboard")
	group.Get("/total-balance/:userId", lh.TotalBalance)
	group.Post("/send-money", ph.SendMoney)
	group.Post("/request-money", ph.RequestMoney)
	group.Post("/pay-bill", ph.PayBill)
}
