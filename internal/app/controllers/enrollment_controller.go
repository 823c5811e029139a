package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/champlain/campus/internal/app/models/dto"
	"github.com/champlain/campus/internal/app/services"
	"github.com/champlain/campus/internal/middleware"
	"github.com/champlain/campus/internal/pkg/apperrors"
	"github.com/champlain/campus/internal/pkg/validation"
)

// EnrollmentController handles enrollment endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

func enrollmentIDParam(ctx *gin.Context) (string, bool) {
	id := ctx.Param("enrollmentId")
	if !validation.IsValidID(id) {
		middleware.HandleAPIError(ctx, apperrors.NewInvalidInputError("Provided Enrollment id is invalid: "+id))
		return "", false
	}
	return id, true
}

// GetAllEnrollments streams all enrollments
// @Summary List enrollments
// @Tags enrollments
// @Produce text/event-stream
// @Router /enrollment [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	streamEvents(ctx, c.enrollmentService.ListAll(ctx.Request.Context()))
}

// GetEnrollmentByID retrieves an enrollment
// @Summary Get enrollment by id
// @Tags enrollments
// @Param enrollmentId path string true "Enrollment ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Router /enrollment/{enrollmentId} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := enrollmentIDParam(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}

// CreateEnrollment enrolls a student in a course. Both must exist in their
// owning services.
// @Summary Create an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Enrollment"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /enrollment [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	enrollment, err := c.enrollmentService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if enrollment == nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	ctx.JSON(http.StatusCreated, enrollment)
}

// UpdateEnrollment overwrites an enrollment
// @Summary Update an enrollment
// @Tags enrollments
// @Param enrollmentId path string true "Enrollment ID"
// @Param request body dto.EnrollmentRequest true "Enrollment"
// @Success 200 {object} dto.EnrollmentResponse
// @Router /enrollment/{enrollmentId} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := enrollmentIDParam(ctx)
	if !ok {
		return
	}

	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	enrollment, err := c.enrollmentService.UpdateByID(ctx.Request.Context(), req, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if enrollment == nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Tags enrollments
// @Param enrollmentId path string true "Enrollment ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Router /enrollment/{enrollmentId} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := enrollmentIDParam(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.DeleteByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}
