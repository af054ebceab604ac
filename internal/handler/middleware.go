package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/airhart/airport-api/internal/auth"
	"github.com/airhart/airport-api/internal/model"
)

const claimsKey = "auth_claims"

// RequireAuth rejects requests without a valid bearer token and parks
// the verified claims on the request context. Handlers pull the user id
// out of the claims and pass it to services explicitly.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			ctx.AbortWithStatusJSON(401, gin.H{
				"error": "Authentication required",
			})
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(401, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireStaff must run after RequireAuth.
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := CurrentClaims(ctx)
		if claims == nil || claims.Role != model.RoleStaff {
			ctx.AbortWithStatusJSON(403, gin.H{
				"error": "Staff role required",
			})
			return
		}
		ctx.Next()
	}
}

func CurrentClaims(ctx *gin.Context) *auth.Claims {
	value, ok := ctx.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
