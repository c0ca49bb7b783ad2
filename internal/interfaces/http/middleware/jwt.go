package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
	"github.com/umitgh/procurement-system/internal/infrastructure/auth"
	"github.com/umitgh/procurement-system/internal/infrastructure/logger"
	"github.com/umitgh/procurement-system/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Context keys written by JWTAuth
const (
	JWTClaimsKey = "jwt_claims"
	ActorKey     = "actor"
)

const bearerPrefix = "Bearer "

// JWTConfig holds the collaborators of the JWT middleware
type JWTConfig struct {
	Verifier *auth.Verifier
	// Revocations is optional; without it revoked users keep access until
	// their tokens expire
	Revocations auth.RevocationStore
	Logger      *zap.Logger
}

// JWTAuth verifies the bearer token and records the caller as the request's
// actor. Requests without a valid token are answered with 401.
func JWTAuth(cfg JWTConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing authorization header")
			return
		}
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := cfg.Verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			log.Debug("Rejected bearer token", zap.Error(err), zap.String("path", c.Request.URL.Path))
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrCodeTokenExpired, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid token")
			return
		}

		userID, _ := claims.UserUUID()
		if cfg.Revocations != nil {
			revoked, err := cfg.Revocations.IsRevoked(c.Request.Context(), userID, claims.IssuedAtTime())
			switch {
			case err != nil:
				// fail open
				log.Error("Failed to check token revocation", zap.String("user_id", userID.String()), zap.Error(err))
			case revoked:
				abortUnauthorized(c, dto.ErrCodeTokenRevoked, "Token has been revoked")
				return
			}
		}

		actor := procurementapp.Actor{ID: userID, Role: claims.IdentityRole()}
		c.Set(JWTClaimsKey, claims)
		c.Set(ActorKey, actor)
		c.Request = c.Request.WithContext(logger.WithActor(c.Request.Context(), userID.String(), claims.Role))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// GetJWTClaims returns the verified claims, or nil on unauthenticated routes
func GetJWTClaims(c *gin.Context) *auth.Claims {
	claims, _ := c.Get(JWTClaimsKey)
	jwtClaims, _ := claims.(*auth.Claims)
	return jwtClaims
}

// GetActor returns the authenticated caller
func GetActor(c *gin.Context) (procurementapp.Actor, bool) {
	v, exists := c.Get(ActorKey)
	if !exists {
		return procurementapp.Actor{}, false
	}
	actor, ok := v.(procurementapp.Actor)
	return actor, ok && actor.ID != uuid.Nil
}
