package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/domain"
)

type CampService interface {
	CreateCamp(ctx context.Context, camp domain.Camp) (domain.InsertResult, error)
	GetCamp(ctx context.Context, id string) (domain.Camp, error)
	ListCamps(ctx context.Context, q domain.CampQuery) ([]domain.Camp, error)
	CountCamps(ctx context.Context, search string) (int64, error)
	PopularCamps(ctx context.Context) ([]domain.Camp, error)
	AffordableCamps(ctx context.Context) ([]domain.Camp, error)
	UpdateCamp(ctx context.Context, id string, camp domain.Camp) (domain.UpdateResult, error)
	DeleteCamp(ctx context.Context, id string) (domain.DeleteResult, error)
	IncrementParticipantCount(ctx context.Context, id string) (domain.UpdateResult, error)
}

type CampHandler struct {
	svc CampService
}

func NewCampHandler(svc CampService) *CampHandler {
	return &CampHandler{
		svc: svc,
	}
}

// HandleListCamps godoc
// @Summary      List camps
// @Description  Search matches campName, dateTime and professionalName. sorted is one of participantCount, fees, campName.
// @Tags         camps
// @Produce      json
// @Param        search  query     string  false  "search term"
// @Param        sorted  query     string  false  "sort key"
// @Param        page    query     int     false  "page index, from 0"
// @Param        size    query     int     false  "page size"
// @Success      200     {array}   domain.Camp
// @Failure      500     {object}  response.Err
// @Router       /camps [get]
func (h *CampHandler) HandleListCamps(ctx *gin.Context) {
	q := domain.CampQuery{
		Search: ctx.Query("search"),
		Sort:   domain.ParseCampSort(ctx.Query("sorted")),
		Page:   domain.NewPage(ctx.Query("page"), ctx.Query("size")),
	}

	camps, err := h.svc.ListCamps(ctx.Request.Context(), q)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListCamps -> h.svc.ListCamps", err)
		return
	}

	ctx.JSON(http.StatusOK, camps)
}

// HandleCountCamps godoc
// @Summary      Count camps matching a search
// @Tags         camps
// @Produce      json
// @Param        search  query     string  false  "search term"
// @Success      200     {object}  domain.CountResult
// @Router       /camps-count [get]
func (h *CampHandler) HandleCountCamps(ctx *gin.Context) {
	count, err := h.svc.CountCamps(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCountCamps -> h.svc.CountCamps", err)
		return
	}

	ctx.JSON(http.StatusOK, domain.CountResult{Count: count})
}

// HandleGetCamp godoc
// @Summary      Get a camp
// @Tags         camps
// @Produce      json
// @Param        id   path      string  true  "camp id"
// @Success      200  {object}  domain.Camp
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /camp/{id} [get]
func (h *CampHandler) HandleGetCamp(ctx *gin.Context) {
	camp, err := h.svc.GetCamp(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetCamp -> h.svc.GetCamp", err)
		return
	}

	ctx.JSON(http.StatusOK, camp)
}

// HandlePopularCamps godoc
// @Summary      Six camps with the most participants
// @Tags         camps
// @Produce      json
// @Success      200  {array}  domain.Camp
// @Router       /popular-camps [get]
func (h *CampHandler) HandlePopularCamps(ctx *gin.Context) {
	camps, err := h.svc.PopularCamps(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePopularCamps -> h.svc.PopularCamps", err)
		return
	}

	ctx.JSON(http.StatusOK, camps)
}

// HandleAffordableCamps godoc
// @Summary      Six cheapest camps
// @Tags         camps
// @Produce      json
// @Success      200  {array}  domain.Camp
// @Router       /affordable-camps [get]
func (h *CampHandler) HandleAffordableCamps(ctx *gin.Context) {
	camps, err := h.svc.AffordableCamps(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleAffordableCamps -> h.svc.AffordableCamps", err)
		return
	}

	ctx.JSON(http.StatusOK, camps)
}

// HandleCreateCamp godoc
// @Summary      Create a camp
// @Tags         camps
// @Accept       json
// @Produce      json
// @Param        request  body      request.CampRequest  true  "request body"
// @Success      201      {object}  domain.InsertResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /camps [post]
// @Security BearerAuth
func (h *CampHandler) HandleCreateCamp(ctx *gin.Context) {
	camp, respErr := bindCamp(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.CreateCamp(ctx.Request.Context(), camp)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateCamp -> h.svc.CreateCamp", err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// HandleUpdateCamp godoc
// @Summary      Replace a camp's details
// @Tags         camps
// @Accept       json
// @Produce      json
// @Param        campId   path      string               true  "camp id"
// @Param        request  body      request.CampRequest  true  "request body"
// @Success      200      {object}  domain.UpdateResult
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /update-camp/{campId} [put]
// @Security BearerAuth
func (h *CampHandler) HandleUpdateCamp(ctx *gin.Context) {
	camp, respErr := bindCamp(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.UpdateCamp(ctx.Request.Context(), ctx.Param("campId"), camp)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateCamp -> h.svc.UpdateCamp", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleDeleteCamp godoc
// @Summary      Delete a camp
// @Tags         camps
// @Produce      json
// @Param        campId  path      string  true  "camp id"
// @Success      200     {object}  domain.DeleteResult
// @Failure      400     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Router       /delete-camp/{campId} [delete]
// @Security BearerAuth
func (h *CampHandler) HandleDeleteCamp(ctx *gin.Context) {
	result, err := h.svc.DeleteCamp(ctx.Request.Context(), ctx.Param("campId"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteCamp -> h.svc.DeleteCamp", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleIncrementParticipantCount godoc
// @Summary      Add one to a camp's participant count
// @Tags         camps
// @Produce      json
// @Param        id   path      string  true  "camp id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      400  {object}  response.Err
// @Router       /participant-count/{id} [patch]
// @Security BearerAuth
func (h *CampHandler) HandleIncrementParticipantCount(ctx *gin.Context) {
	result, err := h.svc.IncrementParticipantCount(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleIncrementParticipantCount -> h.svc.IncrementParticipantCount", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func bindCamp(ctx *gin.Context) (domain.Camp, *response.Err) {
	var req request.CampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return domain.Camp{}, response.ErrBadRequest(err)
	}

	if err := req.Validate(); err != nil {
		return domain.Camp{}, response.ErrBadRequest(err)
	}

	return domain.Camp{
		CampName:         req.CampName,
		Image:            req.Image,
		DateTime:         req.DateTime,
		Location:         req.Location,
		ProfessionalName: req.ProfessionalName,
		Fees:             req.Fees,
		TargetAudience:   req.TargetAudience,
		Description:      req.Description,
	}, nil
}
