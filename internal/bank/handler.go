package bank

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/okapi-fin/okapi/internal/identity"
)

// Handler exposes bank link endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a bank link HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type linkRequest struct {
	AccountNumber     string `json:"account_number"`
	DebitCardLastFour string `json:"debit_card_last_four"`
}

type codeRequest struct {
	Code string `json:"code"`
}

// Link creates an unverified bank account for the user in the path.
func (h *Handler) Link(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	account, err := h.service.Link(c.UserContext(), LinkInput{
		UserID:            c.Params("userId"),
		AccountNumber:     req.AccountNumber,
		DebitCardLastFour: req.DebitCardLastFour,
	})
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "User not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":         "Bank account linked successfully",
		"bank_account_id": account.ID,
	})
}

// SetVerificationCode issues a code for the bank account in the path.
func (h *Handler) SetVerificationCode(c *fiber.Ctx) error {
	var req codeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.IssueCode(c.UserContext(), c.Params("bankAccountId"), req.Code); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "Bank account not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Verification code set"})
}

// Verify marks the bank account verified when the presented code matches.
// Both an unknown account and a mismatched code render as a 400, matching
// the original surface which never distinguished the two on this endpoint.
func (h *Handler) Verify(c *fiber.Ctx) error {
	var req codeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Verify(c.UserContext(), c.Params("bankAccountId"), req.Code); err != nil {
		if errors.Is(err, ErrCodeMismatch) || errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusBadRequest, "Invalid verification code")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Bank account verified"})
}
