package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/service"
)

var errForbidden = errors.New("forbidden access")

type RoleFinder interface {
	FindRoleByEmail(ctx context.Context, email string) (domain.Role, error)
}

type RoleGuard struct {
	finder RoleFinder
}

func NewRoleGuard(finder RoleFinder) *RoleGuard {
	return &RoleGuard{
		finder: finder,
	}
}

// RequireOrganizer must run after VerifyJWT. The role is read from the store on every
// request so a demotion takes effect immediately.
func (g *RoleGuard) RequireOrganizer() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email, ok := EmailFromContext(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		role, err := g.finder.FindRoleByEmail(ctx.Request.Context(), email)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				response.RenderErr(ctx, response.ErrPermissionDenied(errForbidden))
				return
			}

			err = fmt.Errorf("middleware.RequireOrganizer -> g.finder.FindRoleByEmail -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		if role != domain.RoleOrganizer {
			response.RenderErr(ctx, response.ErrPermissionDenied(errForbidden))
			return
		}

		ctx.Next()
	}
}

// RequireSelf only lets a request through when the path parameter param equals the
// token email.
func RequireSelf(param string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email, ok := EmailFromContext(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		if ctx.Param(param) != email {
			response.RenderErr(ctx, response.ErrPermissionDenied(errForbidden))
			return
		}

		ctx.Next()
	}
}
