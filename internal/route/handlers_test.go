package route

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"

	"backend-walkloop/internal/position"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func newTestApp(positions *position.Service) *fiber.App {
	gen := NewGenerator(NewGeometricBuilder(rand.New(rand.NewSource(1))), nil)
	app := fiber.New()
	RegisterRoutes(app.Group("/routes"), gen, positions, func(c *fiber.Ctx) error { return c.Next() })
	return app
}

func postJSON(app *fiber.App, path, body string) (int, []byte) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	payload, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, payload
}

func TestGenerateHandler(t *testing.T) {
	app := newTestApp(nil)
	status, body := postJSON(app, "/routes/generate",
		`{"start":{"lat":51.6280,"lng":-0.1055},"goal":{"kind":"distance","value":3.0}}`)
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}

	var out struct {
		Routes []Route `json:"routes"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Routes) != 4 {
		t.Fatalf("expected 4 routes, got %d", len(out.Routes))
	}
	if out.Routes[0].Name != "Perfect Circle" || out.Routes[0].EstimatedSteps != 3750 {
		t.Fatalf("unexpected first route: %+v", out.Routes[0])
	}
}

func TestGenerateHandlerRejectsBadGoals(t *testing.T) {
	app := newTestApp(nil)
	cases := []string{
		`{"start":{"lat":0,"lng":0}}`,
		`{"start":{"lat":0,"lng":0},"goal":{"kind":"steps","value":0}}`,
		`{"start":{"lat":0,"lng":0},"goal":{"kind":"steps","value":-10}}`,
		`{"start":{"lat":0,"lng":0},"goal":{"kind":"calories","value":10}}`,
	}
	for _, body := range cases {
		if status, _ := postJSON(app, "/routes/generate", body); status != 400 {
			t.Fatalf("body %s: expected 400, got %d", body, status)
		}
	}
}

func TestGenerateHandlerRejectsBadCoordinates(t *testing.T) {
	app := newTestApp(nil)
	status, _ := postJSON(app, "/routes/generate",
		`{"start":{"lat":95,"lng":0},"goal":{"kind":"distance","value":1}}`)
	if status != 400 {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestGenerateHandlerMissingStart(t *testing.T) {
	app := newTestApp(nil)
	status, _ := postJSON(app, "/routes/generate", `{"goal":{"kind":"distance","value":1}}`)
	if status != 400 {
		t.Fatalf("expected 400 without start or user, got %d", status)
	}
}

func TestGenerateHandlerFallsBackToLastPosition(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	positions := position.NewService(client)
	app := newTestApp(positions)

	// unknown user: no stored position
	status, _ := postJSON(app, "/routes/generate",
		`{"user_id":"user-1","goal":{"kind":"distance","value":1}}`)
	if status != 400 {
		t.Fatalf("expected 400 before a position exists, got %d", status)
	}

	if err := positions.Update(context.Background(), "user-1", testCenter); err != nil {
		t.Fatalf("seed position: %v", err)
	}

	status, body := postJSON(app, "/routes/generate",
		`{"user_id":"user-1","goal":{"kind":"distance","value":1}}`)
	if status != 200 {
		t.Fatalf("expected 200 with stored position, got %d", status)
	}
	var out struct {
		Routes []Route `json:"routes"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Routes) != 4 {
		t.Fatalf("expected 4 routes, got %d", len(out.Routes))
	}
}
