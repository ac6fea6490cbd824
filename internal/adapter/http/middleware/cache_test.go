package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/infrastructure/cache"

	"github.com/gin-gonic/gin"
)

func newCachedRouter(store cache.Store, hits *int, status int) *gin.Engine {
	r := gin.New()
	r.GET("/v1/requests/:id", ViewCache(store, "coop", time.Minute, entities.ViewRequestDetail, "id"), func(c *gin.Context) {
		*hits++
		c.JSON(status, gin.H{"id": c.Param("id"), "n": *hits})
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestViewCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("miss then hit", func(t *testing.T) {
		store := cache.NewMemoryStore()
		calls := 0
		r := newCachedRouter(store, &calls, http.StatusOK)

		first := get(r, "/v1/requests/12")
		if first.Header().Get("X-Cache") != "MISS" || calls != 1 {
			t.Fatalf("expected miss, got %q calls=%d", first.Header().Get("X-Cache"), calls)
		}
		second := get(r, "/v1/requests/12")
		if second.Header().Get("X-Cache") != "HIT" || calls != 1 {
			t.Fatalf("expected hit, got %q calls=%d", second.Header().Get("X-Cache"), calls)
		}
		if second.Body.String() != first.Body.String() {
			t.Fatalf("expected identical body, got %s vs %s", second.Body.String(), first.Body.String())
		}
		if ct := second.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
			t.Fatalf("expected restored content type, got %q", ct)
		}
	})

	t.Run("invalidation forces a miss", func(t *testing.T) {
		store := cache.NewMemoryStore()
		calls := 0
		r := newCachedRouter(store, &calls, http.StatusOK)

		get(r, "/v1/requests/12")
		get(r, "/v1/requests/13")
		_ = cache.NewInvalidator(store, "coop").Handle(t.Context(), entities.ChangeEvent{
			RequestID: 12,
			Views:     []entities.View{entities.ViewRequestDetail},
		})

		if w := get(r, "/v1/requests/12"); w.Header().Get("X-Cache") != "MISS" {
			t.Fatalf("expected miss after invalidation")
		}
		if w := get(r, "/v1/requests/13"); w.Header().Get("X-Cache") != "HIT" {
			t.Fatalf("expected other request still cached")
		}
	})

	t.Run("invalidation during render is not overwritten", func(t *testing.T) {
		store := cache.NewMemoryStore()
		inv := cache.NewInvalidator(store, "coop")
		version := 1
		r := gin.New()
		r.GET("/v1/requests/:id", ViewCache(store, "coop", time.Minute, entities.ViewRequestDetail, "id"), func(c *gin.Context) {
			rendered := version
			if rendered == 1 {
				// a mutation commits while the old body is being written
				version = 2
				_ = inv.Handle(c.Request.Context(), entities.ChangeEvent{RequestID: 12, Views: []entities.View{entities.ViewRequestDetail}})
			}
			c.JSON(http.StatusOK, gin.H{"version": rendered})
		})

		if w := get(r, "/v1/requests/12"); w.Body.String() != `{"version":1}` {
			t.Fatalf("unexpected first body %s", w.Body.String())
		}
		w := get(r, "/v1/requests/12")
		if w.Header().Get("X-Cache") != "MISS" || w.Body.String() != `{"version":2}` {
			t.Fatalf("expected fresh render, got %s %s", w.Header().Get("X-Cache"), w.Body.String())
		}
		if w := get(r, "/v1/requests/12"); w.Header().Get("X-Cache") != "HIT" || w.Body.String() != `{"version":2}` {
			t.Fatalf("expected cached fresh body, got %s %s", w.Header().Get("X-Cache"), w.Body.String())
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		store := cache.NewMemoryStore()
		calls := 0
		r := newCachedRouter(store, &calls, http.StatusNotFound)

		get(r, "/v1/requests/99")
		get(r, "/v1/requests/99")
		if calls != 2 || store.Len() != 0 {
			t.Fatalf("expected no caching of 404, calls=%d keys=%d", calls, store.Len())
		}
	})

	t.Run("nil store passes through", func(t *testing.T) {
		calls := 0
		r := gin.New()
		r.GET("/v1/requests", ViewCache(nil, "coop", time.Minute, entities.ViewRequestList, ""), func(c *gin.Context) {
			calls++
			c.Status(http.StatusOK)
		})
		get(r, "/v1/requests")
		if w := get(r, "/v1/requests"); w.Header().Get("X-Cache") != "" || calls != 2 {
			t.Fatalf("expected passthrough, calls=%d", calls)
		}
	})
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	status, got, body, ok := decodePayload(bs)
	if !ok || status != 200 || got.Get("Content-Type") != "application/json" || string(body) != `{"a":1}` {
		t.Fatalf("unexpected decode: ok=%v status=%d hdr=%v body=%s", ok, status, got, body)
	}
	if _, _, _, ok := decodePayload([]byte{0, 0}); ok {
		t.Fatalf("expected short payload rejected")
	}
}
