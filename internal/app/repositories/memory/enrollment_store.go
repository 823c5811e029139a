package memory

import (
	"context"
	"iter"
	"strconv"
	"sync"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/app/repositories"
)

// Ensure EnrollmentStore implements the interface.
var _ repositories.EnrollmentRepository = (*EnrollmentStore)(nil)

// EnrollmentStore is an in-memory implementation of repositories.EnrollmentRepository.
type EnrollmentStore struct {
	mu          sync.RWMutex
	enrollments []models.Enrollment
	nextID      int
}

// NewEnrollmentStore creates a new in-memory enrollment store.
func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{nextID: 1}
}

func (s *EnrollmentStore) indexOf(id string) int {
	for i := range s.enrollments {
		if s.enrollments[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByEnrollmentID retrieves an enrollment by business id.
func (s *EnrollmentStore) FindByEnrollmentID(_ context.Context, enrollmentID string) (*models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.enrollments {
		if e.EnrollmentID == enrollmentID {
			return &e, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll yields a snapshot of the stored enrollments.
func (s *EnrollmentStore) FindAll(ctx context.Context) iter.Seq2[*models.Enrollment, error] {
	return func(yield func(*models.Enrollment, error) bool) {
		s.mu.RLock()
		snapshot := make([]models.Enrollment, len(s.enrollments))
		copy(snapshot, s.enrollments)
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

// Save inserts or replaces an enrollment.
func (s *EnrollmentStore) Save(_ context.Context, enrollment *models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enrollment.ID == "" {
		for _, e := range s.enrollments {
			if e.EnrollmentID == enrollment.EnrollmentID {
				return repositories.ErrEnrollmentAlreadyExists
			}
		}
		enrollment.ID = strconv.Itoa(s.nextID)
		s.nextID++
		s.enrollments = append(s.enrollments, *enrollment)
		return nil
	}

	i := s.indexOf(enrollment.ID)
	if i < 0 {
		return repositories.ErrNotFound
	}
	s.enrollments[i] = *enrollment
	return nil
}

// Delete removes an enrollment.
func (s *EnrollmentStore) Delete(_ context.Context, enrollment *models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(enrollment.ID)
	if i < 0 {
		return repositories.ErrNotFound
	}
	s.enrollments = append(s.enrollments[:i], s.enrollments[i+1:]...)
	return nil
}

// Count returns the number of stored enrollments.
func (s *EnrollmentStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.enrollments)), nil
}

// Ping always succeeds.
func (s *EnrollmentStore) Ping(_ context.Context) error {
	return nil
}
