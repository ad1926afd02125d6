package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/service"
)

type UserService interface {
	Register(ctx context.Context, user domain.User) (domain.CreateUserResult, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	HasRole(ctx context.Context, email string, role domain.Role) (bool, error)
	UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (domain.UpdateResult, error)
	UpdateOwnProfile(ctx context.Context, actorEmail, id string, patch domain.ProfilePatch) (domain.UpdateResult, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users [get]
// @Security BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListUsers -> h.svc.ListUsers", err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleCreateUser godoc
// @Summary      Store a user on first sign-in
// @Description  An already known email is not an error: created is false and insertedId is null.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateUserRequest  true  "request body"
// @Success      200      {object}  domain.CreateUserResult
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users [post]
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Register(ctx.Request.Context(), domain.User{
		Email:   req.Email,
		Name:    req.Name,
		Image:   req.Image,
		Contact: req.Contact,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateUser -> h.svc.Register", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleIsOrganizer godoc
// @Summary      Check the organizer role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "user email"
// @Success      200    {object}  response.RoleResponse
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Router       /user/organizer/{email} [get]
// @Security BearerAuth
func (h *UserHandler) HandleIsOrganizer(ctx *gin.Context) {
	ok, err := h.svc.HasRole(ctx.Request.Context(), ctx.Param("email"), domain.RoleOrganizer)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleIsOrganizer -> h.svc.HasRole", err)
		return
	}

	ctx.JSON(http.StatusOK, response.RoleResponse{Organizer: &ok})
}

// HandleIsParticipant godoc
// @Summary      Check the participant role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "user email"
// @Success      200    {object}  response.RoleResponse
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Router       /user/participant/{email} [get]
// @Security BearerAuth
func (h *UserHandler) HandleIsParticipant(ctx *gin.Context) {
	ok, err := h.svc.HasRole(ctx.Request.Context(), ctx.Param("email"), domain.RoleParticipant)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleIsParticipant -> h.svc.HasRole", err)
		return
	}

	ctx.JSON(http.StatusOK, response.RoleResponse{Participant: &ok})
}

// HandleGetProfile godoc
// @Summary      Get a profile by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "user email"
// @Success      200    {object}  domain.User
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /organizer/{email} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetProfile(ctx *gin.Context) {
	email := ctx.Param("email")

	user, err := h.svc.GetUserByEmail(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "email", email))
			return
		}

		renderServiceErr(ctx, "v1.HandleGetProfile -> h.svc.GetUserByEmail", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateOrganizerProfile godoc
// @Summary      Update any profile as organizer
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "user id"
// @Param        request  body      request.UpdateProfileRequest  true  "request body"
// @Success      200      {object}  domain.UpdateResult
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /organizer/update-profile/{id} [patch]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateOrganizerProfile(ctx *gin.Context) {
	patch, respErr := bindProfilePatch(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.UpdateProfile(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateOrganizerProfile -> h.svc.UpdateProfile", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleUpdateParticipantProfile godoc
// @Summary      Update the caller's own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "user id"
// @Param        request  body      request.UpdateProfileRequest  true  "request body"
// @Success      200      {object}  domain.UpdateResult
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /participant/update-profile/{id} [patch]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateParticipantProfile(ctx *gin.Context) {
	email, respErr := emailFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	patch, respErr := bindProfilePatch(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.UpdateOwnProfile(ctx.Request.Context(), email, ctx.Param("id"), patch)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateParticipantProfile -> h.svc.UpdateOwnProfile", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func bindProfilePatch(ctx *gin.Context) (domain.ProfilePatch, *response.Err) {
	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return domain.ProfilePatch{}, response.ErrBadRequest(err)
	}

	if err := req.Validate(); err != nil {
		return domain.ProfilePatch{}, response.ErrBadRequest(fmt.Errorf("invalid profile: %w", err))
	}

	return domain.ProfilePatch{
		Name:    req.Name,
		Image:   req.Image,
		Contact: req.Contact,
	}, nil
}
