package kyc

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/okapi-fin/okapi/internal/identity"
)

// Handler exposes KYC endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a KYC HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Initiate opens a new verification case for the user in the path.
func (h *Handler) Initiate(c *fiber.Ctx) error {
	verification, err := h.service.Initiate(c.UserContext(), c.Params("userId"))
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "User not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":         "KYC verification initiated",
		"verification_id": verification.ID,
	})
}
