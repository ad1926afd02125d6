package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/api/middleware"
	"github.com/vietanh2810/medicamp-api/internal/config"
	"github.com/vietanh2810/medicamp-api/internal/pkg/jwthelper"
)

type AuthService interface {
	IssueToken(email string) (string, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleJWTAccess godoc
// @Summary      Issue an access token
// @Description  Signs a 24h token for an email already authenticated by the identity provider.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.JWTAccessRequest  true  "request body"
// @Success      200      {object}  response.TokenResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /jwt-access [post]
func (h *AuthHandler) HandleJWTAccess(ctx *gin.Context) {
	var req request.JWTAccessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	token, err := h.svc.IssueToken(req.Email)
	if err != nil {
		err = fmt.Errorf("v1.HandleJWTAccess -> h.svc.IssueToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if h.conf.CookieTransport {
		h.setTokenCookie(ctx, token, int(jwthelper.TokenTTL.Seconds()))
	}

	ctx.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

// HandleLogout godoc
// @Summary      Clear the token cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Router       /logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	h.setTokenCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

func (h *AuthHandler) setTokenCookie(ctx *gin.Context, value string, maxAge int) {
	if h.conf.CookieSecure {
		ctx.SetSameSite(http.SameSiteNoneMode)
	} else {
		ctx.SetSameSite(http.SameSiteStrictMode)
	}
	ctx.SetCookie(middleware.TokenCookieName, value, maxAge, "/", "", h.conf.CookieSecure, true)
}
