package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/jwt"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/response"
)

const principalKey = "principal"

// JWTAuth validates the bearer token and stores the caller in the context,
// both as a principal.Principal and as the plain user_id/role keys the
// loggers read.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.CustomError(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		role := principal.Role(claims.Role)
		if !role.Valid() {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Unknown role in token")
			return
		}

		c.Set(principalKey, principal.Principal{UserID: claims.UserID, Role: role})
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// PrincipalFrom returns the caller set by JWTAuth.
func PrincipalFrom(c *gin.Context) (principal.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return principal.Principal{}, false
	}
	p, ok := v.(principal.Principal)
	return p, ok
}

// MustPrincipal is PrincipalFrom for handlers mounted behind JWTAuth; it writes
// the 401 itself when the caller is missing.
func MustPrincipal(c *gin.Context) (principal.Principal, bool) {
	p, ok := PrincipalFrom(c)
	if !ok {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}
	return p, ok
}
