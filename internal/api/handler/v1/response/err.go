package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error body of every failed request.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	AppCode    int    `json:"code"`
	StatusText string `json:"status"`
	ErrorText  string `json:"error,omitempty"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.StatusText
	}
	return e.Err.Error()
}

// RenderErr writes e and aborts the chain. Server errors are logged and their cause is
// not sent to the client.
func RenderErr(ctx *gin.Context, e *Err) {
	LogErr(ctx, e)
	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func LogErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode < http.StatusInternalServerError {
		return
	}

	zap.L().Error(e.StatusText,
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.FullPath()),
		zap.Error(e.Err),
	)
}

func newErr(status int, err error) *Err {
	e := &Err{
		Err:            err,
		HTTPStatusCode: status,
		AppCode:        status,
		StatusText:     http.StatusText(status),
	}
	if err != nil && status < http.StatusInternalServerError {
		e.ErrorText = err.Error()
	}
	return e
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err)
}

func ErrNotFound(resource, key string, value any) *Err {
	return newErr(http.StatusNotFound, fmt.Errorf("%s with %s %v not found", resource, key, value))
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err)
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, err)
}

func ErrServiceUnavailable(err error) *Err {
	return newErr(http.StatusServiceUnavailable, err)
}
