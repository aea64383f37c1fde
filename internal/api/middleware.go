// internal/api/middleware.go
package api

import (
	"strings"

	"tripplanner-api/internal/api/middleware"
	"tripplanner-api/internal/apperr"
	"tripplanner-api/internal/auth"
	"tripplanner-api/internal/constants"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller from a Bearer header or the access
// token cookie and stores the member id on the context.
func AuthMiddleware(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(constants.AccessTokenCookie)
		}
		if token == "" {
			middleware.Abort(c, apperr.New(apperr.Unauthorized))
			return
		}

		claims, err := sessions.ParseAccessToken(token)
		if err != nil {
			middleware.Abort(c, err)
			return
		}

		memberID, _ := claims.MemberID()
		c.Set(constants.ContextMemberID, memberID)
		c.Set(constants.ContextEmail, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
