package memory

import (
	"context"
	"iter"
	"sync"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/app/repositories"
)

// Ensure CourseStore implements the interface.
var _ repositories.CourseRepository = (*CourseStore)(nil)

// CourseStore is an in-memory implementation of repositories.CourseRepository.
// Courses are kept in insertion order.
type CourseStore struct {
	mu      sync.RWMutex
	courses []models.Course
	nextID  int64
}

// NewCourseStore creates a new in-memory course store.
func NewCourseStore() *CourseStore {
	return &CourseStore{nextID: 1}
}

func (s *CourseStore) indexOf(id int64) int {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByCourseID retrieves a course by business id.
func (s *CourseStore) FindByCourseID(_ context.Context, courseID string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.CourseID == courseID {
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll yields a snapshot of the stored courses.
func (s *CourseStore) FindAll(ctx context.Context) iter.Seq2[*models.Course, error] {
	return func(yield func(*models.Course, error) bool) {
		s.mu.RLock()
		snapshot := make([]models.Course, len(s.courses))
		copy(snapshot, s.courses)
		s.mu.RUnlock()

		for i := range snapshot {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(&snapshot[i], nil) {
				return
			}
		}
	}
}

// Save inserts or replaces a course.
func (s *CourseStore) Save(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID == 0 {
		for _, c := range s.courses {
			if c.CourseID == course.CourseID {
				return repositories.ErrCourseAlreadyExists
			}
		}
		course.ID = s.nextID
		s.nextID++
		s.courses = append(s.courses, *course)
		return nil
	}

	i := s.indexOf(course.ID)
	if i < 0 {
		return repositories.ErrNotFound
	}
	s.courses[i] = *course
	return nil
}

// Delete removes a course.
func (s *CourseStore) Delete(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(course.ID)
	if i < 0 {
		return repositories.ErrNotFound
	}
	s.courses = append(s.courses[:i], s.courses[i+1:]...)
	return nil
}

// Count returns the number of stored courses.
func (s *CourseStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.courses)), nil
}

// Ping always succeeds.
func (s *CourseStore) Ping(_ context.Context) error {
	return nil
}
