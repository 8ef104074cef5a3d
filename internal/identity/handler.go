package identity

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/okapi-fin/okapi/internal/ledger"
)

// Handler exposes identity endpoints.
type Handler struct {
	service *Service
	ledger  *ledger.Service
}

// NewHandler constructs an identity HTTP handler. The ledger service is used
// to provision the primary sub-account on registration.
func NewHandler(service *Service, ledger *ledger.Service) *Handler {
	return &Handler{service: service, ledger: ledger}
}

type registerRequest struct {
	Phone    string `json:"phone_number"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username       string `json:"username"`
	CivilIDLastTwo string `json:"civil_id_last_two"`
}

type civilIDRequest struct {
	CivilIDLastTwo string `json:"civil_id_last_two"`
}

type profileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone_number"`
}

type retrieveRequest struct {
	Phone string `json:"phone_number"`
}

// Register handles user creation from phone and password.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.service.Register(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, ErrPhoneTaken) {
			return fiber.NewError(http.StatusConflict, "phone number already registered")
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if h.ledger != nil {
		// Every holder gets a zero-balance primary sub-account up front.
		_, _ = h.ledger.CreateAccount(c.UserContext(), user.ID)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

// Login signs a user in by username and civil id suffix.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.service.SignIn(c.UserContext(), req.Username, req.CivilIDLastTwo)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Sign in successful",
		"user_id": user.ID,
	})
}

// AcceptTerms records terms acceptance for the user in the path.
func (h *Handler) AcceptTerms(c *fiber.Ctx) error {
	if err := h.service.AcceptTerms(c.UserContext(), c.Params("userId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "User not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Terms and conditions accepted"})
}

// CompleteProfile overwrites the user's profile fields.
func (h *Handler) CompleteProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	err := h.service.CompleteProfile(c.UserContext(), c.Params("userId"), Profile{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "User not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Profile updated successfully"})
}

// AuthenticateWithCivilID re-authenticates a known user by civil id suffix.
func (h *Handler) AuthenticateWithCivilID(c *fiber.Ctx) error {
	var req civilIDRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	err := h.service.AuthenticateWithCivilID(c.UserContext(), c.Params("userId"), req.CivilIDLastTwo)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "User not found")
		case errors.Is(err, ErrCivilIDMismatch):
			return fiber.NewError(http.StatusUnauthorized, "Authentication failed")
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Authentication successful"})
}

// RetrieveAccount resolves an account by phone number.
func (h *Handler) RetrieveAccount(c *fiber.Ctx) error {
	var req retrieveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.service.RetrieveByPhone(c.UserContext(), req.Phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "User not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":  "Account retrieved",
		"username": user.Username,
	})
}

// SendOnboardingNotification fires the onboarding SMS for a user.
func (h *Handler) SendOnboardingNotification(c *fiber.Ctx) error {
	if err := h.service.SendOnboardingNotification(c.UserContext(), c.Params("userId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "User not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Notification sent successfully"})
}
