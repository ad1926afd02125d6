package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/pkg/jwthelper"
)

const (
	ContextEmailKey = "email"
	TokenCookieName = "token"
)

var (
	errMissingToken = errors.New("unauthorized access")
	errInvalidToken = errors.New("unauthorized access")
)

type Authenticator struct {
	jwtSigningKey  []byte
	cookieFallback bool
}

// NewAuthenticator verifies tokens signed with key. With cookieFallback set, a request
// without an Authorization header may carry the token in the "token" cookie.
func NewAuthenticator(key string, cookieFallback bool) *Authenticator {
	return &Authenticator{
		jwtSigningKey:  []byte(key),
		cookieFallback: cookieFallback,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := a.extractToken(ctx)
		if token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.jwtSigningKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))
			return
		}

		ctx.Set(ContextEmailKey, claims.Email)
		ctx.Next()
	}
}

func (a *Authenticator) extractToken(ctx *gin.Context) string {
	if header := ctx.GetHeader("Authorization"); header != "" {
		return extractBearerToken(header)
	}

	if a.cookieFallback {
		if cookie, err := ctx.Cookie(TokenCookieName); err == nil {
			return strings.TrimSpace(cookie)
		}
	}

	return ""
}

func extractBearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}

	return fields[1]
}

// EmailFromContext returns the email VerifyJWT stored on the request.
func EmailFromContext(ctx *gin.Context) (string, bool) {
	email := ctx.GetString(ContextEmailKey)
	return email, email != ""
}
