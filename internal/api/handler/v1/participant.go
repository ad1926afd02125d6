package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/service"
)

type ParticipantService interface {
	Register(ctx context.Context, actorEmail string, p domain.Participant) (domain.RegistrationOutcome, error)
	GetRegistration(ctx context.Context, actorEmail, id string) (domain.Participant, error)
	RegisteredCamps(ctx context.Context, email string, q domain.ListQuery) ([]domain.Participant, error)
	CountRegistered(ctx context.Context, email, search string) (int64, error)
	ListParticipants(ctx context.Context, q domain.ListQuery) ([]domain.ParticipantRow, error)
	CountParticipants(ctx context.Context, search string) (int64, error)
	Confirm(ctx context.Context, id string) (domain.UpdateResult, error)
	Cancel(ctx context.Context, actorEmail, id string) (domain.DeleteResult, error)
	Analytics(ctx context.Context, email string) ([]domain.AnalyticsRow, error)
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleListParticipants godoc
// @Summary      List registrations with their payments
// @Description  Outer join: registrations without a payment are listed with an empty transactionId.
// @Tags         participants
// @Produce      json
// @Param        search  query     string  false  "search term"
// @Param        page    query     int     false  "page index, from 0"
// @Param        size    query     int     false  "page size"
// @Success      200     {array}   domain.ParticipantRow
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Router       /participants [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	rows, err := h.svc.ListParticipants(ctx.Request.Context(), listQueryFromContext(ctx))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListParticipants -> h.svc.ListParticipants", err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleCountParticipants godoc
// @Summary      Count registrations matching a search
// @Tags         participants
// @Produce      json
// @Param        search  query     string  false  "search term"
// @Success      200     {object}  domain.CountResult
// @Router       /participants-count [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleCountParticipants(ctx *gin.Context) {
	count, err := h.svc.CountParticipants(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCountParticipants -> h.svc.CountParticipants", err)
		return
	}

	ctx.JSON(http.StatusOK, domain.CountResult{Count: count})
}

// HandleRegisteredCamps godoc
// @Summary      Registrations of a user
// @Tags         participants
// @Produce      json
// @Param        email   path      string  true   "participant email"
// @Param        search  query     string  false  "search term"
// @Param        page    query     int     false  "page index, from 0"
// @Param        size    query     int     false  "page size"
// @Success      200     {array}   domain.Participant
// @Failure      403     {object}  response.Err
// @Router       /registered-camps/{email} [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleRegisteredCamps(ctx *gin.Context) {
	found, err := h.svc.RegisteredCamps(ctx.Request.Context(), ctx.Param("email"), listQueryFromContext(ctx))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRegisteredCamps -> h.svc.RegisteredCamps", err)
		return
	}

	ctx.JSON(http.StatusOK, found)
}

// HandleCountRegistered godoc
// @Summary      Count registrations of a user
// @Tags         participants
// @Produce      json
// @Param        email   path      string  true   "participant email"
// @Param        search  query     string  false  "search term"
// @Success      200     {object}  domain.CountResult
// @Router       /registered-camps-count/{email} [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleCountRegistered(ctx *gin.Context) {
	count, err := h.svc.CountRegistered(ctx.Request.Context(), ctx.Param("email"), ctx.Query("search"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCountRegistered -> h.svc.CountRegistered", err)
		return
	}

	ctx.JSON(http.StatusOK, domain.CountResult{Count: count})
}

// HandleGetRegistration godoc
// @Summary      Get a registration
// @Description  Readable by the registration owner and by organizers.
// @Tags         participants
// @Produce      json
// @Param        id   path      string  true  "registration id"
// @Success      200  {object}  domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /participant/{id} [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleGetRegistration(ctx *gin.Context) {
	email, respErr := emailFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	p, err := h.svc.GetRegistration(ctx.Request.Context(), email, ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetRegistration -> h.svc.GetRegistration", err)
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleRegister godoc
// @Summary      Register the caller for a camp
// @Description  Inserts the registration and increments the camp counter. If the increment fails
// @Description  the registration is kept and the outcome is returned with status 500.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest  true  "request body"
// @Success      201      {object}  domain.RegistrationOutcome
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  domain.RegistrationOutcome
// @Router       /participants [post]
// @Security BearerAuth
func (h *ParticipantHandler) HandleRegister(ctx *gin.Context) {
	email, respErr := emailFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	setLookupID(ctx, "camp", req.CampID)

	outcome, err := h.svc.Register(ctx.Request.Context(), email, domain.Participant{
		CampID:           req.CampID,
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
		Age:              req.Age,
		Phone:            req.Phone,
		Gender:           req.Gender,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		if errors.Is(err, service.ErrIncomplete) {
			renderIncomplete(ctx, "v1.HandleRegister -> h.svc.Register", err, outcome)
			return
		}

		renderServiceErr(ctx, "v1.HandleRegister -> h.svc.Register", err)
		return
	}

	ctx.JSON(http.StatusCreated, outcome)
}

// HandleConfirm godoc
// @Summary      Confirm a registration
// @Description  Idempotent: a second call matches and modifies nothing.
// @Tags         participants
// @Produce      json
// @Param        id   path      string  true  "registration id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Router       /confirmation-status/{id} [patch]
// @Security BearerAuth
func (h *ParticipantHandler) HandleConfirm(ctx *gin.Context) {
	result, err := h.svc.Confirm(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleConfirm -> h.svc.Confirm", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleCancel godoc
// @Summary      Cancel the caller's registration
// @Description  The camp participant count is not decremented.
// @Tags         participants
// @Produce      json
// @Param        id   path      string  true  "registration id"
// @Success      200  {object}  domain.DeleteResult
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /cancel-registration/{id} [delete]
// @Security BearerAuth
func (h *ParticipantHandler) HandleCancel(ctx *gin.Context) {
	email, respErr := emailFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.Cancel(ctx.Request.Context(), email, ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCancel -> h.svc.Cancel", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleAnalytics godoc
// @Summary      Registrations with the current participant count of their camp
// @Tags         participants
// @Produce      json
// @Param        email  path      string  true  "participant email"
// @Success      200    {array}   domain.AnalyticsRow
// @Failure      403    {object}  response.Err
// @Router       /analytics/{email} [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleAnalytics(ctx *gin.Context) {
	rows, err := h.svc.Analytics(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleAnalytics -> h.svc.Analytics", err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}
