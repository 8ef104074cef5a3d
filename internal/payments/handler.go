package payments

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Handler exposes the money-movement stub endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a payments handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type moveRequest struct {
	UserID      string          `json:"user_id"`
	RecipientID string          `json:"recipient_id"`
	RequesterID string          `json:"requester_id"`
	BillID      string          `json:"bill_id"`
	Amount      decimal.Decimal `json:"amount"`
}

// SendMoney always succeeds; the transfer itself is not implemented yet.
func (h *Handler) SendMoney(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.SendMoney(c.UserContext(), req.UserID, req.RecipientID, req.Amount); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Money sent successfully"})
}

// RequestMoney always succeeds; the request itself is not implemented yet.
func (h *Handler) RequestMoney(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.RequestMoney(c.UserContext(), req.UserID, req.RequesterID, req.Amount); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Money request sent successfully"})
}

// PayBill always succeeds; bill settlement is not implemented yet.
func (h *Handler) PayBill(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.PayBill(c.UserContext(), req.UserID, req.BillID, req.Amount); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Bill paid successfully"})
}
