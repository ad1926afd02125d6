package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/api/middleware"
	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/service"
)

var errMissingEmail = errors.New("unauthorized access")

func emailFromContext(ctx *gin.Context) (string, *response.Err) {
	email, ok := middleware.EmailFromContext(ctx)
	if !ok {
		return "", response.ErrUnauthorized(errMissingEmail)
	}

	return email, nil
}

func listQueryFromContext(ctx *gin.Context) domain.ListQuery {
	return domain.ListQuery{
		Search: ctx.Query("search"),
		Page:   domain.NewPage(ctx.Query("page"), ctx.Query("size")),
	}
}

// renderServiceErr maps the sentinels shared by all services. Anything unknown is a 500
// carrying op as the call path.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrEmptyPatch),
		errors.Is(err, service.ErrInvalidAmount):
		response.RenderErr(ctx, response.ErrBadRequest(unwrapSentinel(err)))
	case errors.Is(err, service.ErrNotOwner):
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotOwner))
	case errors.Is(err, service.ErrUserNotFound):
		response.RenderErr(ctx, response.ErrNotFound("user", "id", lookupID(ctx, "user", ctx.Param("id"))))
	case errors.Is(err, service.ErrCampNotFound):
		response.RenderErr(ctx, response.ErrNotFound("camp", "id", lookupID(ctx, "camp", campIDParam(ctx))))
	case errors.Is(err, service.ErrParticipantNotFound):
		response.RenderErr(ctx, response.ErrNotFound("registration", "id", lookupID(ctx, "registration", ctx.Param("id"))))
	case errors.Is(err, service.ErrPaymentNotFound):
		response.RenderErr(ctx, response.ErrNotFound("payment", "id", lookupID(ctx, "payment", ctx.Param("id"))))
	case errors.Is(err, service.ErrAlreadyPaid):
		response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyPaid))
	case errors.Is(err, service.ErrNotConfigured),
		errors.Is(err, service.ErrImageGenUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		response.RenderErr(ctx, response.ErrServiceUnavailable(fmt.Errorf("%s -> %w", op, err)))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func unwrapSentinel(err error) error {
	for _, sentinel := range []error{service.ErrInvalidID, service.ErrEmptyPatch, service.ErrInvalidAmount} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}

const lookupKeyPrefix = "lookup."

// setLookupID records an id taken from the request body so a not-found error for
// resource can name it.
func setLookupID(ctx *gin.Context, resource, id string) {
	ctx.Set(lookupKeyPrefix+resource, id)
}

func lookupID(ctx *gin.Context, resource, fallback string) string {
	if id := ctx.GetString(lookupKeyPrefix + resource); id != "" {
		return id
	}
	return fallback
}

func campIDParam(ctx *gin.Context) string {
	if id := ctx.Param("campId"); id != "" {
		return id
	}
	return ctx.Param("id")
}

// renderIncomplete logs a partially applied write and returns its outcome as a 500 so the
// caller can see which steps stuck.
func renderIncomplete(ctx *gin.Context, op string, err error, outcome any) {
	response.LogErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, outcome)
}
