package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(EnsurePlayerID())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("playerID").(string))
	})
	app.Get("/ws", WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestEnsurePlayerID(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "header", target: "/whoami", header: "alice", wantStatus: http.StatusOK, wantBody: "alice"},
		{name: "query", target: "/whoami?playerId=bob", wantStatus: http.StatusOK, wantBody: "bob"},
		{name: "header wins", target: "/whoami?playerId=bob", header: "alice", wantStatus: http.StatusOK, wantBody: "alice"},
		{name: "missing", target: "/whoami", wantStatus: http.StatusUnauthorized},
	}
	app := newApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-Player-ID", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d; want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q; want %q", body, tt.wantBody)
				}
			}
		})
	}
}

func TestWebSocketUpgradeRejectsPlainHTTP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws?playerId=alice", nil)
	resp, err := newApp().Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d; want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		t.Errorf("body is not a JSON error: %v", err)
	}
}

func TestEnsurePlayerIDOutlivesRequest(t *testing.T) {
	var seen []string
	app := fiber.New()
	app.Use(EnsurePlayerID())
	app.Post("/join", func(c *fiber.Ctx) error {
		seen = append(seen, c.Locals("playerID").(string))
		return c.SendStatus(fiber.StatusOK)
	})

	want := []string{"alice", "bob", "carol"}
	for _, id := range want {
		req := httptest.NewRequest(http.MethodPost, "/join", nil)
		req.Header.Set("X-Player-ID", id)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test(%s): %v", id, err)
		}
		resp.Body.Close()
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("stored player IDs changed (-want +got):\n%s", diff)
	}
}
