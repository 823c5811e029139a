package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/champlain/campus/internal/app/controllers"
)

// RegisterCourseRoutes mounts the courses API under /api/v1/courses
func RegisterCourseRoutes(router *gin.Engine, courseController *controllers.CourseController) {
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:courseId", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:courseId", courseController.UpdateCourse)
		courses.DELETE("/:courseId", courseController.DeleteCourse)
	}
}

// RegisterEnrollmentRoutes mounts the enrollments API under /api/v1/enrollment
func RegisterEnrollmentRoutes(router *gin.Engine, enrollmentController *controllers.EnrollmentController) {
	v1 := router.Group("/api/v1")

	enrollments := v1.Group("/enrollment")
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/:enrollmentId", enrollmentController.GetEnrollmentByID)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.PUT("/:enrollmentId", enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:enrollmentId", enrollmentController.DeleteEnrollment)
	}
}

// RegisterHealthRoutes mounts /ping and /health
func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/ping", healthController.Ping)
	router.GET("/health", healthController.Health)
}
