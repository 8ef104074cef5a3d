package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/okapi-fin/okapi/internal/config"
	"github.com/okapi-fin/okapi/internal/logging"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	deps := Deps{
		Cfg:    config.Config{AppEnv: "development"},
		Logger: logging.Discard(),
	}
	if err := Setup(app, deps); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response %q: %v", string(raw), err)
		}
	}
	return resp.StatusCode, decoded
}

func TestOnboardingFlow(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/v1/auth/register",
		map[string]string{"phone_number": "+96550001000", "password": "hunter2"})
	if status != fiber.StatusCreated {
		t.Fatalf("register: expected 201 got %d (%v)", status, body)
	}
	userID, _ := body["user_id"].(string)
	if userID == "" {
		t.Fatalf("register must return user_id, got %v", body)
	}

	status, _ = doJSON(t, app, fiber.MethodPost, "/v1/users/accept-terms/"+userID, nil)
	if status != fiber.StatusOK {
		t.Fatalf("accept terms: expected 200 got %d", status)
	}

	status, _ = doJSON(t, app, fiber.MethodPost, "/v1/users/accept-terms/"+uuid.NewString(), nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("accept terms for unknown user: expected 404 got %d", status)
	}

	status, body = doJSON(t, app, fiber.MethodPost, "/v1/ba/link/"+userID,
		map[string]string{"account_number": "999", "debit_card_last_four": "4321"})
	if status != fiber.StatusCreated {
		t.Fatalf("link: expected 201 got %d (%v)", status, body)
	}
	bankAccountID, _ := body["bank_account_id"].(string)
	if bankAccountID == "" {
		t.Fatalf("link must return bank_account_id, got %v", body)
	}

	status, _ = doJSON(t, app, fiber.MethodPost, "/v1/ba/set-verification-code/"+bankAccountID,
		map[string]string{"code": "5566"})
	if status != fiber.StatusOK {
		t.Fatalf("set code: expected 200 got %d", status)
	}

	status, _ = doJSON(t, app, fiber.MethodPost, "/v1/ba/verify/"+bankAccountID,
		map[string]string{"code": "9999"})
	if status != fiber.StatusBadRequest {
		t.Fatalf("verify with wrong code: expected 400 got %d", status)
	}

	status, _ = doJSON(t, app, fiber.MethodPost, "/v1/ba/verify/"+bankAccountID,
		map[string]string{"code": "5566"})
	if status != fiber.StatusOK {
		t.Fatalf("verify: expected 200 got %d", status)
	}

	status, body = doJSON(t, app, fiber.MethodPost, "/v1/kyc/initiate-verification/"+userID, nil)
	if status != fiber.StatusCreated {
		t.Fatalf("kyc initiate: expected 201 got %d (%v)", status, body)
	}
	if id, _ := body["verification_id"].(string); id == "" {
		t.Fatalf("kyc initiate must return verification_id, got %v", body)
	}

	status, body = doJSON(t, app, fiber.MethodGet, "/v1/dashboard/total-balance/"+userID, nil)
	if status != fiber.StatusOK {
		t.Fatalf("total balance: expected 200 got %d", status)
	}
	if total, ok := body["total_balance"].(float64); !ok || total != 0 {
		t.Fatalf("fresh user must total 0, got %v", body["total_balance"])
	}

	status, body = doJSON(t, app, fiber.MethodPost, "/v1/retrieve-account",
		map[string]string{"phone_number": "+96550001000"})
	if status != fiber.StatusOK {
		t.Fatalf("retrieve account: expected 200 got %d (%v)", status, body)
	}

	status, body = doJSON(t, app, fiber.MethodPost, "/v1/dashboard/send-money",
		map[string]any{"user_id": userID, "recipient_id": uuid.NewString(), "amount": 25.5})
	if status != fiber.StatusOK {
		t.Fatalf("send money stub: expected 200 got %d (%v)", status, body)
	}
}

func TestRegisterDuplicatePhoneConflict(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]string{"phone_number": "+96550002000", "password": "hunter2"}
	if status, _ := doJSON(t, app, fiber.MethodPost, "/v1/auth/register", payload); status != fiber.StatusCreated {
		t.Fatalf("first register: expected 201 got %d", status)
	}
	if status, _ := doJSON(t, app, fiber.MethodPost, "/v1/auth/register", payload); status != fiber.StatusConflict {
		t.Fatalf("duplicate register: expected 409 got %d", status)
	}
}

func TestSetupRejectsMissingDatabaseOutsideDev(t *testing.T) {
	app := fiber.New()
	deps := Deps{
		Cfg:    config.Config{AppEnv: "production"},
		Logger: logging.Discard(),
	}
	if err := Setup(app, deps); err == nil {
		t.Fatalf("expected setup to fail without a database in production")
	}
}
