package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"PoseAnalysis/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	log.NewLogger()
	os.Exit(m.Run())
}

func TestRateLimiterReusesBucketPerIP(t *testing.T) {
	limiter := newRateLimiter(50, 100)

	first := limiter.GetLimiterFrom("10.0.0.1")
	second := limiter.GetLimiterFrom("10.0.0.1")
	if first != second {
		t.Errorf("expected the same limiter for repeated requests from one IP")
	}

	other := limiter.GetLimiterFrom("10.0.0.2")
	if first == other {
		t.Errorf("expected distinct limiters for distinct IPs")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}

	generated := resp.Header.Get("X-Request-ID")
	if generated == "" {
		t.Fatalf("expected a generated X-Request-ID header")
	}

	// A client-provided id is echoed back, not replaced.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id-123")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if got := resp.Header.Get("X-Request-ID"); got != "client-id-123" {
		t.Errorf("X-Request-ID = %q, want client-provided id echoed", got)
	}
}

func TestGetRequestID(t *testing.T) {
	mw := New(log.NewLogger())
	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())

	var captured string
	app.Get("/", func(c *fiber.Ctx) error {
		captured = mw.GetRequestID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil)); err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}

	if captured == "" || captured == "unknown" {
		t.Errorf("GetRequestID inside a request returned %q", captured)
	}
}
