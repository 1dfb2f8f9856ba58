package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"homecare-tracker/internal/models"
	"homecare-tracker/internal/store"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	ContextEmailKey   = "email"
	ContextAccountKey = "account"
	ContextTokenIDKey = "tokenID"
)

// AccountFinder adalah bagian dari store yang dibutuhkan middleware.
type AccountFinder interface {
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}

// AuthMiddleware memvalidasi bearer token lalu menyimpan email (subject) dan
// account pemilik token ke context. Account yang sudah dihapus tidak ditolak di sini:
// handler yang butuh account memutuskan sendiri (404 / 403).
func AuthMiddleware(tokens *utils.TokenService, accounts AccountFinder, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Response{Message: "Authorization token is required"})
			return
		}

		// 2. Format harus "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Response{Message: "Authorization header format must be Bearer {token}"})
			return
		}

		// 3. Validasi Token
		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Response{Message: "Invalid or expired token"})
			return
		}
		c.Set(ContextEmailKey, claims.Subject)
		c.Set(ContextTokenIDKey, claims.ID)

		// 4. Ambil account pemilik token
		acc, err := accounts.FindAccountByEmail(c.Request.Context(), claims.Subject)
		switch {
		case err == nil:
			c.Set(ContextAccountKey, acc)
		case errors.Is(err, store.ErrNotFound):
		default:
			log.Error().Err(err).Str("email", claims.Subject).Msg("load token account")
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.Response{Message: "Internal server error"})
			return
		}

		c.Next()
	}
}

// RequireRole: hanya account dengan salah satu role tsb yang boleh lewat.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc, ok := CurrentAccount(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.Response{Message: "Access denied"})
			return
		}
		for _, r := range roles {
			if acc.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.Response{Message: "Access denied: requires role " + strings.Join(roles, " or ")})
	}
}

// CurrentAccount mengambil account yang disimpan AuthMiddleware.
func CurrentAccount(c *gin.Context) (*models.Account, bool) {
	v, exists := c.Get(ContextAccountKey)
	if !exists {
		return nil, false
	}
	acc, ok := v.(*models.Account)
	return acc, ok
}

// CurrentEmail mengambil subject token.
func CurrentEmail(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
