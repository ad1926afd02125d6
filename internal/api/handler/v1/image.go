package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/domain"
)

type ImageService interface {
	Generate(ctx context.Context, actorEmail, name, category, prompt string) (domain.GeneratedImage, error)
	ListImages(ctx context.Context, email string) ([]domain.GeneratedImage, error)
}

type ImageHandler struct {
	svc ImageService
}

func NewImageHandler(svc ImageService) *ImageHandler {
	return &ImageHandler{
		svc: svc,
	}
}

// HandleListImages godoc
// @Summary      Images generated by a user
// @Tags         images
// @Produce      json
// @Param        email  path      string  true  "owner email"
// @Success      200    {array}   domain.GeneratedImage
// @Failure      403    {object}  response.Err
// @Router       /ai-images/{email} [get]
// @Security BearerAuth
func (h *ImageHandler) HandleListImages(ctx *gin.Context) {
	images, err := h.svc.ListImages(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListImages -> h.svc.ListImages", err)
		return
	}

	ctx.JSON(http.StatusOK, images)
}

// HandleGenerate godoc
// @Summary      Generate and host an image from a prompt
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        request  body      request.GenerateImageRequest  true  "request body"
// @Success      201      {object}  domain.GeneratedImage
// @Failure      400      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /generate [post]
// @Security BearerAuth
func (h *ImageHandler) HandleGenerate(ctx *gin.Context) {
	email, respErr := emailFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.GenerateImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	img, err := h.svc.Generate(ctx.Request.Context(), email, req.Name, req.Category, req.Prompt)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGenerate -> h.svc.Generate", err)
		return
	}

	ctx.JSON(http.StatusCreated, img)
}
