package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	appconfig "rab_service/internal/infrastructure/config"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{MockMode: true})
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("mock echoes the request as approved", func(t *testing.T) {
		g, _ := NewMercadoPagoGateway(appconfig.PaymentsConfig{MockMode: true})
		g.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }

		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":150000,"external_reference":"prj-1"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != "approved" || id == "" {
			t.Fatalf("unexpected result id=%q status=%q", id, status)
		}

		var resp map[string]any
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("response: %v", err)
		}
		if resp["external_reference"] != "prj-1" || resp["date_created"] != "2026-05-01T10:00:00Z" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}
