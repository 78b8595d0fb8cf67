package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toeflcenter/backend/internal/auth"
	"github.com/toeflcenter/backend/internal/dto"
	"github.com/toeflcenter/backend/internal/model"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware authenticates bearer tokens and enforces role requirements.
// Every protected route passes RequireAuth first; admin routes additionally
// pass RequireRole(model.RoleAdmin).
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth verifies the Authorization header and attaches the verified
// identity (id + role) to the request context. No domain logic runs on failure.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Not authorized, token failed"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Not authorized, token expired"
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: message})
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextRole, claims.Role)
		ctx.Next()
	}
}

// RequireRole rejects authenticated callers whose role does not match.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		callerRole, exists := ctx.Get(ContextRole)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
			return
		}
		if roleStr, ok := callerRole.(string); !ok || roleStr != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied, insufficient role"})
			return
		}
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the gin context.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	val, exists := ctx.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

// IsAdmin reports whether the authenticated caller holds the admin role.
func IsAdmin(ctx *gin.Context) bool {
	val, exists := ctx.Get(ContextRole)
	if !exists {
		return false
	}
	role, ok := val.(string)
	return ok && role == model.RoleAdmin
}
