package middleware

import (
	"context"
	"net/http"
	"strings"

	"aratrack/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token. The token
// id (jti) lives in RegisteredClaims.ID.
type JWTClaims struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Generacion int64  `json:"gen,omitempty"`
	jwt.RegisteredClaims
}

// Revocados reports whether a token id has been revoked by logout, and the
// user's current token generation.
type Revocados interface {
	Revocado(ctx context.Context, jti string) (bool, error)
	Generacion(ctx context.Context, userID string) (int64, error)
}

// JWTAuth validates the Bearer token on every protected route. It rejects
// tokens revoked by logout and tokens issued before the user's password or
// active flag last changed.
func JWTAuth(secret string, revocados Revocados) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		if claims.ID != "" && revocados != nil {
			revocado, err := revocados.Revocado(c.Request.Context(), claims.ID)
			if err != nil {
				log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("token denylist unavailable")
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, apierror.New("Servicio de sesiones no disponible"))
				return
			}
			if revocado {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesion cerrada"))
				return
			}
		}

		if claims.UserID != "" && revocados != nil {
			gen, err := revocados.Generacion(c.Request.Context(), claims.UserID)
			if err != nil {
				log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("token generation unavailable")
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, apierror.New("Servicio de sesiones no disponible"))
				return
			}
			if claims.Generacion < gen {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesion revocada"))
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects requests whose user is not the configured administrator.
func RequireAdmin(adminUsername string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Username != adminUsername {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}
