package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/domain"
)

type StatsService interface {
	OrganizerStats(ctx context.Context) (domain.OrganizerStats, error)
	ParticipantStats(ctx context.Context, email string) (domain.ParticipantStats, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleOrganizerStats godoc
// @Summary      Dashboard totals for organizers
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.OrganizerStats
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /organizer-stats [get]
// @Security BearerAuth
func (h *StatsHandler) HandleOrganizerStats(ctx *gin.Context) {
	stats, err := h.svc.OrganizerStats(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleOrganizerStats -> h.svc.OrganizerStats", err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleParticipantStats godoc
// @Summary      Dashboard totals for one participant
// @Tags         stats
// @Produce      json
// @Param        email  path      string  true  "participant email"
// @Success      200    {object}  domain.ParticipantStats
// @Failure      403    {object}  response.Err
// @Router       /participant-stats/{email} [get]
// @Security BearerAuth
func (h *StatsHandler) HandleParticipantStats(ctx *gin.Context) {
	stats, err := h.svc.ParticipantStats(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleParticipantStats -> h.svc.ParticipantStats", err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
