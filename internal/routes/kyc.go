package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okapi-fin/okapi/internal/kyc"
)

// RegisterKYCRoutes wires the KYC case endpoints.
func RegisterKYCRoutes(r fiber.Router, h *kyc.Handler) {
	r.Post("/kyc/initiate-verification/:userId", h.Initiate)
}
