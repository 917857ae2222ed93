package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"auction-marketplace/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

type authClaims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

func parseBearerToken(c *gin.Context, secret []byte) (*authClaims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, false
	}
	return claims, true
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity on the request context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c, secret)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, jwt.ErrTokenMalformed, "authentication required")
			c.Abort()
			return
		}
		c.Set("userID", claims.Subject)
		c.Set("isAdmin", claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the admin flag.
// Must run after RequireAuth.
func RequireAdmin(c *gin.Context) {
	if !c.GetBool("isAdmin") {
		utils.JSONError(c, http.StatusForbidden, jwt.ErrTokenInvalidClaims, "administrator access required")
		c.Abort()
		return
	}
	c.Next()
}

// OptionalAuth records the caller's identity when a valid token is present
// and lets anonymous requests through untouched.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearerToken(c, secret); ok {
			c.Set("userID", claims.Subject)
			c.Set("isAdmin", claims.IsAdmin)
		}
		c.Next()
	}
}
