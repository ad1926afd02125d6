package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/domain"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, actorEmail string, f domain.Feedback) (domain.InsertResult, error)
	ListFeedbacks(ctx context.Context) ([]domain.Feedback, error)
	Summary(ctx context.Context) (domain.FeedbackSummary, error)
}

type FeedbackHandler struct {
	svc FeedbackService
}

func NewFeedbackHandler(svc FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		svc: svc,
	}
}

// HandleListFeedbacks godoc
// @Summary      List feedback, newest first
// @Tags         feedbacks
// @Produce      json
// @Success      200  {array}  domain.Feedback
// @Router       /feedbacks [get]
func (h *FeedbackHandler) HandleListFeedbacks(ctx *gin.Context) {
	feedbacks, err := h.svc.ListFeedbacks(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListFeedbacks -> h.svc.ListFeedbacks", err)
		return
	}

	ctx.JSON(http.StatusOK, feedbacks)
}

// HandleCreateFeedback godoc
// @Summary      Leave feedback
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Param        request  body      request.FeedbackRequest  true  "request body"
// @Success      201      {object}  domain.InsertResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Router       /feedbacks [post]
// @Security BearerAuth
func (h *FeedbackHandler) HandleCreateFeedback(ctx *gin.Context) {
	email, respErr := emailFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.CreateFeedback(ctx.Request.Context(), email, domain.Feedback{
		Name:     req.Name,
		Image:    req.Image,
		Rating:   req.Rating,
		Feedback: req.Feedback,
		CampName: req.CampName,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateFeedback -> h.svc.CreateFeedback", err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// HandleFeedbackSummary godoc
// @Summary      Feedback count, average, rating histogram and latest entries
// @Tags         feedbacks
// @Produce      json
// @Success      200  {object}  domain.FeedbackSummary
// @Router       /feedback-data [get]
func (h *FeedbackHandler) HandleFeedbackSummary(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleFeedbackSummary -> h.svc.Summary", err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
