package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ticketwise/api/internal/pkg/jwthelper"
)

// ContextKeyUserID is where VerifyJWT leaves the authenticated user's id.
const ContextKeyUserID = "user_id"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		claims, err := jwthelper.ParseToken([]byte(a.signingKey), parts[1])
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		// Tokens are bound to the user agent they were issued to.
		if claims.UserAgent != ctx.Request.UserAgent() {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Next()
	}
}
