package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hebatacademy/certify/internal/auth"
	"github.com/hebatacademy/certify/internal/constant"
	"github.com/hebatacademy/certify/internal/util"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

func authUserFromContext(ctx *gin.Context) (auth.JWTPayload, error) {
	value, exists := ctx.Get("user")
	if !exists {
		return auth.JWTPayload{}, errors.New("user not found in context")
	}

	user, ok := value.(auth.JWTPayload)
	if !ok {
		return auth.JWTPayload{}, errors.New("user claim has unexpected type")
	}

	return user, nil
}

// RequireRole gates a route group to the given roles. Must run after
// AuthMiddleware so the user claim is set.
func (m Middleware) RequireRole(roles ...constant.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := authUserFromContext(ctx)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
			ctx.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				ctx.Next()
				return
			}
		}

		util.ResponseFailed(ctx, http.StatusForbidden, "Insufficient role", nil, nil)
		ctx.Abort()
	}
}

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	if !m.app.Config.RateLimiter.Enabled {
		ctx.Next()
		return
	}

	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		ctx.Header("Retry-After", retryAfter.String())
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Rate limit exceeded", nil, nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
