package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	iauth "github.com/elsmrh/sami-yaya/internal/auth"
	"github.com/elsmrh/sami-yaya/pkg/errors"
	"github.com/elsmrh/sami-yaya/pkg/response"
)

// CtxTokenKey holds the raw bearer token for the authenticated request so the
// logout handler can revoke it.
const CtxTokenKey = "sessionToken"

// Auth enforces bearer-token authentication against the session service. An
// absent, malformed or unregistered token yields 401 before the handler runs.
func Auth(sessions *iauth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if len(authz) < 8 || !strings.EqualFold(authz[:7], "Bearer ") {
			response.Error(c, errors.ErrUnauthorized)
			c.Abort()
			return
		}

		token := strings.TrimSpace(authz[7:])
		if !sessions.Validate(token) {
			c.Header("WWW-Authenticate", "Bearer")
			response.Error(c, errors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(CtxTokenKey, token)
		c.Next()
	}
}
