package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/app/repositories"
)

func TestEnrollmentStore_Lifecycle(t *testing.T) {
	store := NewEnrollmentStore()
	ctx := context.Background()

	e := &models.Enrollment{EnrollmentID: "06a7d573-bcab-4db3-956f-773324b92a80", Semester: models.SemesterFall}
	require.NoError(t, store.Save(ctx, e))
	require.NotEmpty(t, e.ID)

	e.Semester = models.SemesterWinter
	require.NoError(t, store.Save(ctx, e))

	found, err := store.FindByEnrollmentID(ctx, e.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, models.SemesterWinter, found.Semester)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, store.Delete(ctx, found))
	_, err = store.FindByEnrollmentID(ctx, e.EnrollmentID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestEnrollmentStore_FindAllEmpty(t *testing.T) {
	store := NewEnrollmentStore()

	count := 0
	for range store.FindAll(context.Background()) {
		count++
	}
	assert.Zero(t, count)
}

func TestEnrollmentStore_FindAllStopsEarly(t *testing.T) {
	store := NewEnrollmentStore()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, &models.Enrollment{EnrollmentID: id}))
	}

	var seen []string
	for e, err := range store.FindAll(ctx) {
		require.NoError(t, err)
		seen = append(seen, e.EnrollmentID)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}
