package services

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/champlain/campus/internal/app/clients"
	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/app/models/dto"
	"github.com/champlain/campus/internal/app/repositories"
	"github.com/champlain/campus/internal/pkg/apperrors"
	"github.com/champlain/campus/internal/pkg/helpers"
	"github.com/champlain/campus/internal/pkg/logger"
)

// EnrollmentService handles enrollment operations. Writes resolve the
// referenced student and course against their owning services first.
type EnrollmentService struct {
	enrollmentRepo repositories.EnrollmentRepository
	students       clients.StudentClient
	courses        clients.CourseClient
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo repositories.EnrollmentRepository,
	students clients.StudentClient,
	courses clients.CourseClient,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		students:       students,
		courses:        courses,
	}
}

func enrollmentNotFound(enrollmentID string) error {
	return apperrors.NewResourceNotFoundError("Enrollment id not found: " + enrollmentID)
}

func (s *EnrollmentService) findEnrollment(ctx context.Context, enrollmentID string) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, enrollmentNotFound(enrollmentID)
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return enrollment, nil
}

// resolve looks up the student, then the course, and merges both into a new
// enrollment built from req. The course is not fetched if the student is missing.
func (s *EnrollmentService) resolve(ctx context.Context, req dto.EnrollmentRequest) (models.Enrollment, error) {
	student := s.students.GetStudent(ctx, req.StudentID)
	switch student.Outcome {
	case clients.Found:
	case clients.NotFound:
		logger.Debug().Str("studentId", req.StudentID).Msg("Enrollment rejected, unknown student")
		return models.Enrollment{}, apperrors.NewResourceNotFoundError("StudentId not found: " + req.StudentID)
	default:
		return models.Enrollment{}, fmt.Errorf("error fetching student %s: %w", req.StudentID, student.Err)
	}

	course := s.courses.GetCourse(ctx, req.CourseID)
	switch course.Outcome {
	case clients.Found:
	case clients.NotFound:
		logger.Debug().Str("courseId", req.CourseID).Msg("Enrollment rejected, unknown course")
		return models.Enrollment{}, apperrors.NewResourceNotFoundError("CourseId not found: " + req.CourseID)
	default:
		return models.Enrollment{}, fmt.Errorf("error fetching course %s: %w", req.CourseID, course.Err)
	}

	return dto.ToEnrollmentEntity(req, *student.Value, *course.Value), nil
}

// ListAll streams every enrollment in store order
func (s *EnrollmentService) ListAll(ctx context.Context) iter.Seq2[*dto.EnrollmentResponse, error] {
	return func(yield func(*dto.EnrollmentResponse, error) bool) {
		for enrollment, err := range s.enrollmentRepo.FindAll(ctx) {
			if err != nil {
				yield(nil, fmt.Errorf("error listing enrollments: %w", err))
				return
			}
			resp := dto.ToEnrollmentResponse(*enrollment)
			if !yield(&resp, nil) {
				return
			}
		}
	}
}

// GetByID retrieves an enrollment by its enrollment id
func (s *EnrollmentService) GetByID(ctx context.Context, enrollmentID string) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.findEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToEnrollmentResponse(*enrollment)
	return &resp, nil
}

// Create resolves the student and course and stores a new enrollment
func (s *EnrollmentService) Create(ctx context.Context, req dto.EnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	enrollment.EnrollmentID = helpers.GenerateID()

	if err := s.enrollmentRepo.Save(ctx, &enrollment); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	logger.Debug().
		Str("enrollmentId", enrollment.EnrollmentID).
		Str("studentId", enrollment.StudentID).
		Str("courseId", enrollment.CourseID).
		Msg("Enrollment created")
	resp := dto.ToEnrollmentResponse(enrollment)
	return &resp, nil
}

// UpdateByID re-resolves the student and course and overwrites an existing
// enrollment. The enrollment id and internal key are kept.
func (s *EnrollmentService) UpdateByID(ctx context.Context, req dto.EnrollmentRequest, enrollmentID string) (*dto.EnrollmentResponse, error) {
	existing, err := s.findEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	enrollment.EnrollmentID = existing.EnrollmentID
	enrollment.ID = existing.ID

	if err := s.enrollmentRepo.Save(ctx, &enrollment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, enrollmentNotFound(enrollmentID)
		}
		return nil, fmt.Errorf("error updating enrollment: %w", err)
	}

	resp := dto.ToEnrollmentResponse(enrollment)
	return &resp, nil
}

// DeleteByID removes an enrollment and returns its last state
func (s *EnrollmentService) DeleteByID(ctx context.Context, enrollmentID string) (*dto.EnrollmentResponse, error) {
	existing, err := s.findEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	if err := s.enrollmentRepo.Delete(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, enrollmentNotFound(enrollmentID)
		}
		return nil, fmt.Errorf("error deleting enrollment: %w", err)
	}

	resp := dto.ToEnrollmentResponse(*existing)
	return &resp, nil
}

// Ping checks that the enrollment store is reachable
func (s *EnrollmentService) Ping(ctx context.Context) error {
	return s.enrollmentRepo.Ping(ctx)
}
