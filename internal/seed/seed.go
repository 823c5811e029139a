package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/app/repositories"
)

// DefaultCourses is the demo course catalogue.
func DefaultCourses() []models.Course {
	return []models.Course{
		{
			CourseID:     "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223",
			CourseNumber: "trs-075",
			CourseName:   "Web Services",
			NumHours:     45,
			NumCredits:   3.0,
			Department:   "Computer Science",
		},
		{
			CourseID:     "d819e4f4-25af-4d33-91e9-2c45f0071606",
			CourseNumber: "ygo-675",
			CourseName:   "Shakespeare's Greatest Works",
			NumHours:     45,
			NumCredits:   3.0,
			Department:   "English",
		},
	}
}

// DefaultEnrollments enrolls the demo student in both demo courses.
func DefaultEnrollments() []models.Enrollment {
	return []models.Enrollment{
		{
			EnrollmentID:     "06a7d573-bcab-4db3-956f-773324b92a80",
			EnrollmentYear:   2021,
			Semester:         models.SemesterFall,
			StudentID:        "c3540a89-cb47-4c96-888e-ff96708db4d8",
			StudentFirstName: "Christine",
			StudentLastName:  "Gerard",
			CourseID:         "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223",
			CourseNumber:     "trs-075",
			CourseName:       "Web Services",
		},
		{
			EnrollmentID:     "98f7b33a-d62a-420a-a84a-05a27c85fc91",
			EnrollmentYear:   2021,
			Semester:         models.SemesterFall,
			StudentID:        "c3540a89-cb47-4c96-888e-ff96708db4d8",
			StudentFirstName: "Christine",
			StudentLastName:  "Gerard",
			CourseID:         "d819e4f4-25af-4d33-91e9-2c45f0071606",
			CourseNumber:     "ygo-675",
			CourseName:       "Shakespeare's Greatest Works",
		},
	}
}

// Courses loads the demo courses into an empty store. It returns the number
// of records written; a non-empty store is left untouched.
func Courses(ctx context.Context, repo repositories.CourseRepository, lgr zerolog.Logger) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	if n > 0 {
		lgr.Info().Int64("existing", n).Msg("Course store not empty, skipping seed")
		return 0, nil
	}

	var finalErr error
	written := 0
	for _, course := range DefaultCourses() {
		if err := repo.Save(ctx, &course); err != nil {
			if errors.Is(err, repositories.ErrCourseAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("courseId", course.CourseID).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		written++
	}

	lgr.Info().Int("count", written).Msg("Seeded courses")
	return written, finalErr
}

// Enrollments loads the demo enrollments into an empty store.
func Enrollments(ctx context.Context, repo repositories.EnrollmentRepository, lgr zerolog.Logger) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting enrollments: %w", err)
	}
	if n > 0 {
		lgr.Info().Int64("existing", n).Msg("Enrollment store not empty, skipping seed")
		return 0, nil
	}

	var finalErr error
	written := 0
	for _, enrollment := range DefaultEnrollments() {
		if err := repo.Save(ctx, &enrollment); err != nil {
			if errors.Is(err, repositories.ErrEnrollmentAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("enrollmentId", enrollment.EnrollmentID).Msg("Error seeding enrollment")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		written++
	}

	lgr.Info().Int("count", written).Msg("Seeded enrollments")
	return written, finalErr
}
