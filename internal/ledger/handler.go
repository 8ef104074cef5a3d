package ledger

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the dashboard balance endpoint.
type Handler struct {
	service *Service
}

// NewHandler builds a ledger HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TotalBalance returns the aggregate balance for the user in the path.
func (h *Handler) TotalBalance(c *fiber.Ctx) error {
	total, err := h.service.TotalBalance(c.UserContext(), c.Params("userId"))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"total_balance": total.InexactFloat64(),
	})
}
