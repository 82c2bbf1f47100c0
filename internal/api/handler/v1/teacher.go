package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketwise/api/internal/api/handler/v1/request"
	"github.com/ticketwise/api/internal/api/handler/v1/response"
	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/service"
)

type TeacherService interface {
	Create(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
	Get(ctx context.Context, id uint) (domain.Teacher, error)
	List(ctx context.Context) ([]domain.Teacher, error)
	Update(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
	Delete(ctx context.Context, id uint) error
}

type TeacherHandler struct {
	svc TeacherService
}

func NewTeacherHandler(svc TeacherService) *TeacherHandler {
	return &TeacherHandler{
		svc: svc,
	}
}

// HandleListTeachers godoc
// @Summary      List all teachers
// @Tags         teachers
// @Produce      json
// @Success      200  {array}   domain.Teacher
// @Failure      500  {object}  response.Err
// @Router       /teachers [get]
// @Security BearerAuth
func (h *TeacherHandler) HandleListTeachers(ctx *gin.Context) {
	teachers, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTeachers -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// HandleCreateTeacher godoc
// @Summary      Create a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        request  body      request.TeacherRequest true "request body"
// @Success      201  {object}  domain.Teacher
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teachers [post]
// @Security BearerAuth
func (h *TeacherHandler) HandleCreateTeacher(ctx *gin.Context) {
	var req request.TeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	teacher, err := h.svc.Create(ctx.Request.Context(), domain.Teacher{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Subject:    req.Subject,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		if errors.Is(err, service.ErrTeacherEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTeacherEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateTeacher -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, teacher)
}

// HandleGetTeacher godoc
// @Summary      Get a teacher by ID
// @Tags         teachers
// @Produce      json
// @Param        teacherID  path      int  true "teacher ID"
// @Success      200  {object}  domain.Teacher
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teachers/{teacherID} [get]
// @Security BearerAuth
func (h *TeacherHandler) HandleGetTeacher(ctx *gin.Context) {
	teacherID, err := uintParam(ctx, "teacherID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	teacher, err := h.svc.Get(ctx.Request.Context(), teacherID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("teacher", "ID", teacherID))

			return
		}

		err = fmt.Errorf("v1.HandleGetTeacher -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// HandleUpdateTeacher godoc
// @Summary      Update a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        teacherID  path      int  true "teacher ID"
// @Param        request    body      request.TeacherRequest true "request body"
// @Success      200  {object}  domain.Teacher
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teachers/{teacherID} [put]
// @Security BearerAuth
func (h *TeacherHandler) HandleUpdateTeacher(ctx *gin.Context) {
	teacherID, err := uintParam(ctx, "teacherID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.TeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	teacher, err := h.svc.Update(ctx.Request.Context(), domain.Teacher{
		ID:         teacherID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Subject:    req.Subject,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherNotFound):
			response.RenderErr(ctx, response.ErrNotFound("teacher", "ID", teacherID))
		case errors.Is(err, service.ErrTeacherEmailExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTeacherEmailExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateTeacher -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// HandleDeleteTeacher godoc
// @Summary      Delete a teacher
// @Tags         teachers
// @Produce      json
// @Param        teacherID  path      int  true "teacher ID"
// @Success      204  {string}  string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teachers/{teacherID} [delete]
// @Security BearerAuth
func (h *TeacherHandler) HandleDeleteTeacher(ctx *gin.Context) {
	teacherID, err := uintParam(ctx, "teacherID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), teacherID); err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("teacher", "ID", teacherID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteTeacher -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
