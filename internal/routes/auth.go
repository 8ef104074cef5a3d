package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okapi-fin/okapi/internal/identity"
)

// RegisterAuthRoutes wires the sign-in, registration and civil-id
// re-authentication endpoints.
func RegisterAuthRoutes(r fiber.Router, h *identity.Handler) {
	group := r.Group("/auth")
	group.Post("/login", h.Login)
	group.Post("/register", h.Register)
	group.Post("/authenticate-with-civil-id/:userId", h.AuthenticateWithCivilID)
}
