package services

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/app/models/dto"
	"github.com/champlain/campus/internal/app/repositories"
	"github.com/champlain/campus/internal/pkg/apperrors"
	"github.com/champlain/campus/internal/pkg/helpers"
	"github.com/champlain/campus/internal/pkg/logger"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

func courseNotFound(courseID string) error {
	return apperrors.NewResourceNotFoundError("Course id not found: " + courseID)
}

// findCourse loads a course or returns a not-found error carrying courseID
func (s *CourseService) findCourse(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := s.courseRepo.FindByCourseID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, courseNotFound(courseID)
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// ListAll streams every course in store order. Each call re-reads the store.
func (s *CourseService) ListAll(ctx context.Context) iter.Seq2[*dto.CourseResponse, error] {
	return func(yield func(*dto.CourseResponse, error) bool) {
		for course, err := range s.courseRepo.FindAll(ctx) {
			if err != nil {
				yield(nil, fmt.Errorf("error listing courses: %w", err))
				return
			}
			resp := dto.ToCourseResponse(*course)
			if !yield(&resp, nil) {
				return
			}
		}
	}
}

// GetByID retrieves a course by its course id
func (s *CourseService) GetByID(ctx context.Context, courseID string) (*dto.CourseResponse, error) {
	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCourseResponse(*course)
	return &resp, nil
}

// Create stores a new course under a freshly generated course id
func (s *CourseService) Create(ctx context.Context, req dto.CourseRequest) (*dto.CourseResponse, error) {
	course := dto.ToCourseEntity(req)
	course.CourseID = helpers.GenerateID()

	if err := s.courseRepo.Save(ctx, &course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	logger.Debug().Str("courseId", course.CourseID).Msg("Course created")
	resp := dto.ToCourseResponse(course)
	return &resp, nil
}

// UpdateByID replaces the editable fields of an existing course. The course id
// and internal key are kept.
func (s *CourseService) UpdateByID(ctx context.Context, req dto.CourseRequest, courseID string) (*dto.CourseResponse, error) {
	existing, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	course := dto.ToCourseEntity(req)
	course.ID = existing.ID
	course.CourseID = existing.CourseID

	if err := s.courseRepo.Save(ctx, &course); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, courseNotFound(courseID)
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	resp := dto.ToCourseResponse(course)
	return &resp, nil
}

// DeleteByID removes a course and returns its last state
func (s *CourseService) DeleteByID(ctx context.Context, courseID string) (*dto.CourseResponse, error) {
	existing, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.Delete(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, courseNotFound(courseID)
		}
		return nil, fmt.Errorf("error deleting course: %w", err)
	}

	logger.Debug().Str("courseId", courseID).Msg("Course deleted")
	resp := dto.ToCourseResponse(*existing)
	return &resp, nil
}

// Ping checks that the course store is reachable
func (s *CourseService) Ping(ctx context.Context) error {
	return s.courseRepo.Ping(ctx)
}
