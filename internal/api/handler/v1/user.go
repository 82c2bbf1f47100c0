package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketwise/api/internal/api/handler/v1/response"
	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userID   path       int  true "user ID"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, err := uintParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleListUsers godoc
// @Summary      List all back-office users
// @Description  Admin only.
// @Tags         users
// @Produce      json
// @Success      200      {array}    domain.User
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users [get]
// @Security BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	caller, renderErr := getUserFromContext(ctx, h.svc)
	if renderErr != nil {
		response.RenderErr(ctx, renderErr)

		return
	}
	if caller.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("admin role required")))

		return
	}

	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, users)
}
