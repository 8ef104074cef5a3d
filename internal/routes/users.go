package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okapi-fin/okapi/internal/identity"
)

// RegisterUserRoutes wires profile and onboarding endpoints.
func RegisterUserRoutes(r fiber.Router, h *identity.Handler) {
	r.Post("/users/accept-terms/:userId", h.AcceptTerms)
	r.Post("/complete-profile/:userId", h.CompleteProfile)
	r.Post("/retrieve-account", h.RetrieveAccount)
	r.Post("/notifications/onboarding/:userId", h.SendOnboardingNotification)
}
