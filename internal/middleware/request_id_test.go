package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals(CtxRequestID).(string)
		return c.SendString(id)
	})

	t.Run("valid inbound id is kept", func(t *testing.T) {
		want := uuid.New().String()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", want)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if got := resp.Header.Get("X-Request-ID"); got != want {
			t.Errorf("X-Request-ID = %q, want %q", got, want)
		}
	})

	t.Run("malformed inbound id is replaced", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "not-a-uuid")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		got := resp.Header.Get("X-Request-ID")
		if got == "not-a-uuid" {
			t.Error("malformed request id was trusted")
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("X-Request-ID %q is not a UUID: %v", got, err)
		}
	})

	t.Run("absent id is generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		if _, err := uuid.Parse(resp.Header.Get("X-Request-ID")); err != nil {
			t.Errorf("generated X-Request-ID is not a UUID: %v", err)
		}
	})
}
