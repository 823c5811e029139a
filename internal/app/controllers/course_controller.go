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

// CourseController handles course endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// courseIDParam returns the courseId path parameter, or false after writing a
// 422 response when it is not a well-formed id.
func courseIDParam(ctx *gin.Context) (string, bool) {
	id := ctx.Param("courseId")
	if !validation.IsValidID(id) {
		middleware.HandleAPIError(ctx, apperrors.NewInvalidInputError("Provided Course id is invalid: "+id))
		return "", false
	}
	return id, true
}

// GetAllCourses streams all courses
// @Summary List courses
// @Tags courses
// @Produce text/event-stream
// @Success 200 {object} dto.CourseResponse "One event per course"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	streamEvents(ctx, c.courseService.ListAll(ctx.Request.Context()))
}

// GetCourseByID retrieves a course
// @Summary Get course by id
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /courses/{courseId} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// CreateCourse handles course creation
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "Course"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if course == nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse replaces a course's fields
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body dto.CourseRequest true "Course"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /courses/{courseId} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	course, err := c.courseService.UpdateByID(ctx.Request.Context(), req, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if course == nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course and returns its last state
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /courses/{courseId} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := courseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.DeleteByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}
