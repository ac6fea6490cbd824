package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newAuthRouter(a *Auth, roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/v1/protected", a.Authenticate(), a.RequireRole(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sub": c.GetString(ContextSubject), "role": c.GetString(ContextRole)})
	})
	return r
}

func call(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("missing token", func(t *testing.T) {
		w := call(newAuthRouter(NewAuth(testSecret, true), RoleAdmin), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signToken(t, "other", jwt.MapClaims{"sub": "u1", "role": RoleAdmin, "exp": exp})
		w := call(newAuthRouter(NewAuth(testSecret, true), RoleAdmin), tok)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "role": RoleAdmin, "exp": time.Now().Add(-time.Minute).Unix()})
		w := call(newAuthRouter(NewAuth(testSecret, true), RoleAdmin), tok)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing role claim", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "exp": exp})
		w := call(newAuthRouter(NewAuth(testSecret, true), RoleAdmin), tok)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("role not allowed", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.MapClaims{"sub": "c9", "role": RoleCompany, "exp": exp})
		w := call(newAuthRouter(NewAuth(testSecret, true), RoleAdmin), tok)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("allowed", func(t *testing.T) {
		tok := signToken(t, testSecret, jwt.MapClaims{"sub": "c9", "role": "company", "exp": exp})
		w := call(newAuthRouter(NewAuth(testSecret, true), RoleAdmin, RoleCompany), tok)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); body != `{"role":"COMPANY","sub":"c9"}` {
			t.Fatalf("unexpected body %s", body)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		a := NewAuth("", false)
		if a.Enabled() {
			t.Fatalf("expected auth to report disabled")
		}
		w := call(newAuthRouter(a, RoleAdmin), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
