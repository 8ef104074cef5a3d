package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func TestCodeRequestRateLimitTrips(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := fiber.New()
	app.Post("/ba/set-verification-code/:bankAccountId", CodeRequestRateLimit(cache, 2), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	send := func() int {
		req := httptest.NewRequest(fiber.MethodPost, "/ba/set-verification-code/acct-1", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	if got := send(); got != fiber.StatusOK {
		t.Fatalf("first request: expected 200 got %d", got)
	}
	if got := send(); got != fiber.StatusOK {
		t.Fatalf("second request: expected 200 got %d", got)
	}
	if got := send(); got != fiber.StatusTooManyRequests {
		t.Fatalf("third request: expected 429 got %d", got)
	}
}

func TestCodeRequestRateLimitKeyedPerAccount(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := fiber.New()
	app.Post("/ba/set-verification-code/:bankAccountId", CodeRequestRateLimit(cache, 1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(account string) int {
		req := httptest.NewRequest(fiber.MethodPost, "/ba/set-verification-code/"+account, strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	if got := send("acct-1"); got != fiber.StatusOK {
		t.Fatalf("acct-1 first: expected 200 got %d", got)
	}
	if got := send("acct-1"); got != fiber.StatusTooManyRequests {
		t.Fatalf("acct-1 second: expected 429 got %d", got)
	}
	if got := send("acct-2"); got != fiber.StatusOK {
		t.Fatalf("acct-2 must have its own budget, got %d", got)
	}
}
