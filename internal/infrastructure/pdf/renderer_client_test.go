package pdf

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cleaning_coop/internal/domain/entities"
)

func TestNewRendererClient(t *testing.T) {
	if _, err := NewRendererClient("  ", time.Second); !errors.Is(err, ErrRendererNotConfigured) {
		t.Fatalf("expected ErrRendererNotConfigured, got %v", err)
	}
	c, err := NewRendererClient("http://pdf:3000/render", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.client.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %s", c.client.Timeout)
	}
}

func TestRendererClient_Render(t *testing.T) {
	estimate := entities.Estimate{Title: "정기 청소 견적", Subtotal: 150000, VAT: 15000, Total: 165000}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %q", ct)
			}
			var p renderPayload
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				t.Errorf("unexpected body: %v", err)
			}
			if p.RequestID != 12 || p.Estimate.Total != 165000 {
				t.Errorf("unexpected payload: %+v", p)
			}
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.7 fake"))
		}))
		defer srv.Close()

		c, _ := NewRendererClient(srv.URL, time.Second)
		got, err := c.Render(context.Background(), 12, estimate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(string(got), "%PDF") {
			t.Fatalf("unexpected document %q", got)
		}
	})

	t.Run("non 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "template missing", http.StatusBadGateway)
		}))
		defer srv.Close()

		c, _ := NewRendererClient(srv.URL, time.Second)
		_, err := c.Render(context.Background(), 12, estimate)
		if err == nil || !strings.Contains(err.Error(), "502") {
			t.Fatalf("expected status error, got %v", err)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c, _ := NewRendererClient(srv.URL, time.Second)
		if _, err := c.Render(context.Background(), 12, estimate); err == nil {
			t.Fatalf("expected error for empty document")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("%PDF"))
		}))
		defer srv.Close()

		c, _ := NewRendererClient(srv.URL, 20*time.Millisecond)
		if _, err := c.Render(context.Background(), 12, estimate); err == nil {
			t.Fatalf("expected timeout error")
		}
	})
}
