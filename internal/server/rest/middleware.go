package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lfgames/gameslib/internal/common"
)

// authGate resolves the bearer token to a user. Verification failures are
// 401, a revoked token is 402 and store trouble is 500.
func (s *Server) authGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if header == "" {
			abortWithError(c, http.StatusUnauthorized, msgNotLoggedIn)
			return
		}
		token := strings.TrimPrefix(header, common.BearerPrefix)

		ctx := c.Request.Context()
		user, claims, err := s.users.Authenticate(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
				abortWithError(c, http.StatusUnauthorized, msgNotLoggedIn)
			case errors.Is(err, common.ErrTokenRevoked):
				abortWithError(c, http.StatusPaymentRequired, msgInvalidToken)
			default:
				s.logger.Error(ctx, "auth gate", "error", err)
				abortWithError(c, http.StatusInternalServerError, msgValidatingUser)
			}
			return
		}

		ctx = WithUser(ctx, user)
		ctx = WithToken(ctx, token)
		ctx = WithClaims(ctx, claims)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userKey), user)

		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
