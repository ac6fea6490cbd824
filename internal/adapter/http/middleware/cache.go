package middleware

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/infrastructure/cache"

	"github.com/gin-gonic/gin"
)

const maxCachedBodyBytes = 1 << 20

// captureWriter tees the response body up to limit bytes.
type captureWriter struct {
	gin.ResponseWriter
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.capture(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *captureWriter) capture(b []byte) {
	if w.overflow {
		return
	}
	if w.buf.Len()+len(b) > w.limit {
		w.overflow = true
		w.buf.Reset()
		return
	}
	w.buf.Write(b)
}

// ViewCache serves GET responses of view from store. scopeParam names the
// path parameter that scopes the view (request or company id); empty means
// cache.ScopeAll. Only 200 responses are stored, keyed by the view's
// invalidation generation.
func ViewCache(store cache.Store, prefix string, ttl time.Duration, view entities.View, scopeParam string) gin.HandlerFunc {
	if store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		scope := cache.ScopeAll
		if scopeParam != "" {
			scope = c.Param(scopeParam)
		}
		ctx := c.Request.Context()
		// The generation is read before the handler runs; an invalidation
		// landing mid-request moves readers to a new key.
		gen, err := cache.CurrentGeneration(ctx, store, prefix, view, scope)
		if err != nil {
			log.Printf("[cache][middleware] generation read failed view=%s scope=%s err=%v", view, scope, err)
			c.Next()
			return
		}
		key := cache.Key(prefix, view, scope, gen, c.Request.URL.RawQuery)

		if bs, err := store.Get(ctx, key); err == nil {
			if status, hdr, body, ok := decodePayload(bs); ok {
				for k, vals := range hdr {
					if strings.EqualFold(k, "Content-Length") || strings.EqualFold(k, "X-Cache") {
						continue
					}
					for _, v := range vals {
						c.Writer.Header().Add(k, v)
					}
				}
				c.Header("X-Cache", "HIT")
				c.Writer.WriteHeader(status)
				_, _ = c.Writer.Write(body)
				c.Abort()
				return
			}
		}

		cw := &captureWriter{ResponseWriter: c.Writer, limit: maxCachedBodyBytes}
		c.Writer = cw
		c.Header("X-Cache", "MISS")
		c.Next()

		if cw.Status() != http.StatusOK || cw.overflow {
			return
		}
		payload, err := encodePayload(cw.Status(), cw.Header(), cw.buf.Bytes())
		if err != nil {
			return
		}
		// The request context may already be cancelled by the time the body is flushed.
		if err := store.SetEx(context.WithoutCancel(ctx), key, payload, ttl); err != nil {
			log.Printf("[cache][middleware] store failed key=%s err=%v", key, err)
		}
	}
}

// encodePayload packs [4 bytes status][4 bytes header length][header JSON][body].
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (int, http.Header, []byte, bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status := int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	hdr := make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &hdr); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, hdr, bs[8+hlen:], true
}
