package repositories

import (
	"context"
	"errors"
	"iter"

	"github.com/champlain/campus/internal/app/models"
)

// ErrNotFound is returned when no record matches the requested key.
var ErrNotFound = errors.New("record not found")

// CourseRepository persists courses. Implementations exist for PostgreSQL,
// SQLite and process memory.
type CourseRepository interface {
	// FindByCourseID returns the course whose business id equals courseID
	// exactly, or ErrNotFound.
	FindByCourseID(ctx context.Context, courseID string) (*models.Course, error)
	// FindAll yields every stored course in store order. Iteration stops at
	// the first error, which is yielded with a nil course.
	FindAll(ctx context.Context) iter.Seq2[*models.Course, error]
	// Save inserts the course when course.ID is zero and overwrites the
	// record with that ID otherwise. On insert course.ID is set.
	Save(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, course *models.Course) error
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// EnrollmentRepository persists enrollments. Implementations exist for
// MongoDB and process memory.
type EnrollmentRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.Enrollment, error)
	FindAll(ctx context.Context) iter.Seq2[*models.Enrollment, error]
	// Save inserts the enrollment when enrollment.ID is empty and replaces
	// the record with that ID otherwise. On insert enrollment.ID is set.
	Save(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, enrollment *models.Enrollment) error
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// Repositories holds the repository instances of one service
type Repositories struct {
	CourseRepository     CourseRepository
	EnrollmentRepository EnrollmentRepository
}
