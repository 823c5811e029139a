package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/app/repositories"
)

func TestCourseStore_SaveAndFind(t *testing.T) {
	store := NewCourseStore()
	ctx := context.Background()

	c := &models.Course{CourseID: "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223", CourseNumber: "trs-075"}
	require.NoError(t, store.Save(ctx, c))
	assert.Equal(t, int64(1), c.ID)

	found, err := store.FindByCourseID(ctx, c.CourseID)
	require.NoError(t, err)
	assert.Equal(t, *c, *found)

	_, err = store.FindByCourseID(ctx, "9A29FFF7-564A-4CC9-8FE1-36F6CA9BC223")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCourseStore_ReturnedCopyIsDetached(t *testing.T) {
	store := NewCourseStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &models.Course{CourseID: "a", CourseName: "Original"}))

	found, err := store.FindByCourseID(ctx, "a")
	require.NoError(t, err)
	found.CourseName = "Changed"

	again, err := store.FindByCourseID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.CourseName)
}

func TestCourseStore_DuplicateBusinessID(t *testing.T) {
	store := NewCourseStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &models.Course{CourseID: "a"}))

	err := store.Save(ctx, &models.Course{CourseID: "a"})
	assert.ErrorIs(t, err, repositories.ErrCourseAlreadyExists)
}

func TestCourseStore_FindAllOrderAndDelete(t *testing.T) {
	store := NewCourseStore()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, &models.Course{CourseID: id}))
	}

	b, err := store.FindByCourseID(ctx, "b")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, b))
	assert.ErrorIs(t, store.Delete(ctx, b), repositories.ErrNotFound)

	var ids []string
	for c, err := range store.FindAll(ctx) {
		require.NoError(t, err)
		ids = append(ids, c.CourseID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCourseStore_UpdateUnknownKey(t *testing.T) {
	store := NewCourseStore()
	err := store.Save(context.Background(), &models.Course{ID: 42, CourseID: "x"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCourseStore_FindAllCancelled(t *testing.T) {
	store := NewCourseStore()
	require.NoError(t, store.Save(context.Background(), &models.Course{CourseID: "a"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for c, err := range store.FindAll(ctx) {
		assert.Nil(t, c)
		assert.ErrorIs(t, err, context.Canceled)
	}
}
