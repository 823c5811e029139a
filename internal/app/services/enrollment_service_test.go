package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/app/models/dto"
	"github.com/champlain/campus/internal/app/repositories/memory"
	"github.com/champlain/campus/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	svc      *EnrollmentService
	store    *memory.EnrollmentStore
	students *fakeStudents
	courses  *fakeCourses
}

func newEnrollmentFixture() enrollmentFixture {
	f := enrollmentFixture{
		store:    memory.NewEnrollmentStore(),
		students: newFakeStudents(),
		courses:  newFakeCourses(),
	}
	f.svc = NewEnrollmentService(f.store, f.students, f.courses)
	return f
}

func (f enrollmentFixture) count(t *testing.T) int64 {
	t.Helper()
	n, err := f.store.Count(context.Background())
	require.NoError(t, err)
	return n
}

func enrollmentRequest(studentID, courseID string) dto.EnrollmentRequest {
	return dto.EnrollmentRequest{
		EnrollmentYear: 2021,
		Semester:       models.SemesterFall,
		StudentID:      studentID,
		CourseID:       courseID,
	}
}

func TestEnrollmentService_CreateEnrichesSnapshot(t *testing.T) {
	f := newEnrollmentFixture()

	resp, err := f.svc.Create(context.Background(), enrollmentRequest(christineID, webServicesID))
	require.NoError(t, err)

	assert.Len(t, resp.EnrollmentID, 36)
	assert.Equal(t, 2021, resp.EnrollmentYear)
	assert.Equal(t, models.SemesterFall, resp.Semester)
	assert.Equal(t, christineID, resp.StudentID)
	assert.Equal(t, "Christine", resp.StudentFirstName)
	assert.Equal(t, "Gerard", resp.StudentLastName)
	assert.Equal(t, webServicesID, resp.CourseID)
	assert.Equal(t, "trs-075", resp.CourseNumber)
	assert.Equal(t, "Web Services", resp.CourseName)
	assert.Equal(t, int64(1), f.count(t))
}

func TestEnrollmentService_CreateUnknownStudent(t *testing.T) {
	f := newEnrollmentFixture()

	_, err := f.svc.Create(context.Background(), enrollmentRequest(unknownStudentID, webServicesID))

	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "StudentId not found: "+unknownStudentID, err.Error())
	assert.Zero(t, f.courses.calls)
	assert.Zero(t, f.count(t))
}

func TestEnrollmentService_CreateUnknownCourse(t *testing.T) {
	f := newEnrollmentFixture()

	_, err := f.svc.Create(context.Background(), enrollmentRequest(christineID, unknownCourseID))

	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "CourseId not found: "+unknownCourseID, err.Error())
	assert.Equal(t, 1, f.students.calls)
	assert.Zero(t, f.count(t))
}

func TestEnrollmentService_TransportErrorIsNotNotFound(t *testing.T) {
	f := newEnrollmentFixture()

	_, err := f.svc.Create(context.Background(), enrollmentRequest(unreachableRemote, webServicesID))
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, err, errConnectionRefused)

	_, err = f.svc.Create(context.Background(), enrollmentRequest(christineID, unreachableRemote))
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Zero(t, f.count(t))
}

func TestEnrollmentService_UpdateChecksExistenceFirst(t *testing.T) {
	f := newEnrollmentFixture()
	missing := "06a7d573-bcab-4db3-956f-773324b92a80"

	_, err := f.svc.UpdateByID(context.Background(), enrollmentRequest(christineID, webServicesID), missing)

	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Enrollment id not found: "+missing, err.Error())
	assert.Zero(t, f.students.calls)
	assert.Zero(t, f.courses.calls)
}

func TestEnrollmentService_UpdatePreservesIdentity(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, enrollmentRequest(christineID, webServicesID))
	require.NoError(t, err)
	before, err := f.store.FindByEnrollmentID(ctx, created.EnrollmentID)
	require.NoError(t, err)

	req := enrollmentRequest(christineID, shakespeareID)
	req.Semester = models.SemesterWinter
	updated, err := f.svc.UpdateByID(ctx, req, created.EnrollmentID)
	require.NoError(t, err)

	assert.Equal(t, created.EnrollmentID, updated.EnrollmentID)
	assert.Equal(t, "ygo-675", updated.CourseNumber)
	assert.Equal(t, "Shakespeare's Greatest Works", updated.CourseName)
	assert.Equal(t, models.SemesterWinter, updated.Semester)

	after, err := f.store.FindByEnrollmentID(ctx, created.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, int64(1), f.count(t))
}

func TestEnrollmentService_UpdateUnknownCourseLeavesRecord(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, enrollmentRequest(christineID, webServicesID))
	require.NoError(t, err)

	_, err = f.svc.UpdateByID(ctx, enrollmentRequest(christineID, unknownCourseID), created.EnrollmentID)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	got, err := f.svc.GetByID(ctx, created.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestEnrollmentService_SnapshotNotRefreshed(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, enrollmentRequest(christineID, webServicesID))
	require.NoError(t, err)

	f.students.students[christineID] = models.Student{StudentID: christineID, FirstName: "Chris", LastName: "Gerard"}

	got, err := f.svc.GetByID(ctx, created.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, "Christine", got.StudentFirstName)
}

func TestEnrollmentService_DeleteAndList(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()

	first, err := f.svc.Create(ctx, enrollmentRequest(christineID, webServicesID))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, enrollmentRequest(christineID, shakespeareID))
	require.NoError(t, err)

	deleted, err := f.svc.DeleteByID(ctx, first.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, first, deleted)

	_, err = f.svc.DeleteByID(ctx, first.EnrollmentID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	var listed []string
	for e, err := range f.svc.ListAll(ctx) {
		require.NoError(t, err)
		listed = append(listed, e.EnrollmentID)
	}
	assert.Equal(t, []string{second.EnrollmentID}, listed)
}
