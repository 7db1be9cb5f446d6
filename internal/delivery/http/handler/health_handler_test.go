package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"jobboard/internal/database"

	"github.com/gofiber/fiber/v3"
)

type stubDB struct {
	pingErr error
}

func (s stubDB) Ping(context.Context) error { return s.pingErr }
func (s stubDB) Close() error               { return nil }

func (s stubDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (s stubDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (s stubDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (s stubDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not implemented")
}

type stubCache struct {
	err error
}

func (s stubCache) Ping(context.Context) error { return s.err }

type stubHub struct {
	clients int
}

func (s stubHub) ClientCount() int { return s.clients }

type healthBody struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Cache     string `json:"cache"`
	WSClients int    `json:"ws_clients"`
}

func getHealth(t *testing.T, h *HealthHandler) healthBody {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Get("/health", h.HandleHealth)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var body healthBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return body
}

func TestHealthHandler_AllUp(t *testing.T) {
	h := NewHealthHandler(stubDB{}, stubCache{}, stubHub{clients: 3})

	body := getHealth(t, h)
	if !body.Success || body.Status != "ok" {
		t.Fatalf("expected ok, got %+v", body)
	}
	if body.Cache != "ok" {
		t.Fatalf("expected cache ok, got %q", body.Cache)
	}
	if body.WSClients != 3 {
		t.Fatalf("expected 3 ws clients, got %d", body.WSClients)
	}
}

func TestHealthHandler_StoreDownDegrades(t *testing.T) {
	h := NewHealthHandler(stubDB{pingErr: errors.New("connection refused")}, stubCache{}, stubHub{})

	body := getHealth(t, h)
	if body.Status != "degraded" {
		t.Fatalf("expected degraded, got %q", body.Status)
	}
}

func TestHealthHandler_CacheDownStaysOK(t *testing.T) {
	h := NewHealthHandler(stubDB{}, stubCache{err: errors.New("redis unavailable")}, nil)

	body := getHealth(t, h)
	if body.Status != "ok" {
		t.Fatalf("expected ok despite cache outage, got %q", body.Status)
	}
	if body.Cache != "unavailable" {
		t.Fatalf("expected cache unavailable, got %q", body.Cache)
	}
	if body.WSClients != 0 {
		t.Fatalf("expected 0 ws clients, got %d", body.WSClients)
	}
}
