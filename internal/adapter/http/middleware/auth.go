package middleware

import (
	"errors"
	"net/http"
	"strings"

	"cleaning_coop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleClient  = "CLIENT"
	RoleAdmin   = "ADMIN"
	RoleCompany = "COMPANY"
)

// Context keys set by Authenticate.
const (
	ContextSubject = "sub"
	ContextRole    = "role"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed", http.StatusForbidden)
)

// Auth validates HS256 bearer tokens carrying "sub" and "role" claims.
// When disabled every request passes and no claims are set.
type Auth struct {
	secret  []byte
	enabled bool
}

func NewAuth(secret string, enabled bool) *Auth {
	return &Auth{secret: []byte(secret), enabled: enabled}
}

func (a *Auth) Enabled() bool {
	return a.enabled
}

func (a *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.enabled {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abort(c, errMissingToken)
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return a.secret, nil
		})
		if err != nil || !tok.Valid {
			abort(c, errInvalidToken)
			return
		}
		role, _ := claims["role"].(string)
		if role == "" {
			abort(c, errInvalidToken)
			return
		}
		sub, _ := claims.GetSubject()

		c.Set(ContextSubject, sub)
		c.Set(ContextRole, strings.ToUpper(role))
		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func (a *Auth) RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		if !a.enabled {
			c.Next()
			return
		}
		if !allowed[c.GetString(ContextRole)] {
			abort(c, errForbidden)
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
