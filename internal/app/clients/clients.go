// Package clients looks up courses and students held by other services.
package clients

import (
	"context"
	"net/http"
	"time"

	"github.com/champlain/campus/internal/app/models"
)

const (
	coursesPath  = "/api/v1/courses"
	studentsPath = "/api/v1/students"
)

// CourseClient fetches a course from the courses service.
type CourseClient interface {
	GetCourse(ctx context.Context, courseID string) Result[models.Course]
}

// StudentClient fetches a student from the students service.
type StudentClient interface {
	GetStudent(ctx context.Context, studentID string) Result[models.Student]
}

// HTTPCourseClient is a CourseClient over HTTP.
type HTTPCourseClient struct {
	remote remote
}

// NewHTTPCourseClient creates a course client for the given base URL.
// A zero timeout leaves the request bounded only by ctx.
func NewHTTPCourseClient(baseURL string, httpClient *http.Client, timeout time.Duration) *HTTPCourseClient {
	return &HTTPCourseClient{remote: newRemote(baseURL, httpClient, timeout)}
}

// GetCourse implements CourseClient.
func (c *HTTPCourseClient) GetCourse(ctx context.Context, courseID string) Result[models.Course] {
	return get[models.Course](ctx, c.remote, coursesPath, courseID)
}

// HTTPStudentClient is a StudentClient over HTTP.
type HTTPStudentClient struct {
	remote remote
}

// NewHTTPStudentClient creates a student client for the given base URL.
func NewHTTPStudentClient(baseURL string, httpClient *http.Client, timeout time.Duration) *HTTPStudentClient {
	return &HTTPStudentClient{remote: newRemote(baseURL, httpClient, timeout)}
}

// GetStudent implements StudentClient.
func (c *HTTPStudentClient) GetStudent(ctx context.Context, studentID string) Result[models.Student] {
	return get[models.Student](ctx, c.remote, studentsPath, studentID)
}
