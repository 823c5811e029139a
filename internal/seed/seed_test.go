package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlain/campus/internal/app/repositories/memory"
)

func TestCourses_OnlyIntoEmptyStore(t *testing.T) {
	store := memory.NewCourseStore()
	ctx := context.Background()

	n, err := Courses(ctx, store, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = Courses(ctx, store, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, n)

	c, err := store.FindByCourseID(ctx, "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223")
	require.NoError(t, err)
	assert.Equal(t, "trs-075", c.CourseNumber)
}

func TestEnrollments_Seed(t *testing.T) {
	store := memory.NewEnrollmentStore()
	ctx := context.Background()

	n, err := Enrollments(ctx, store, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
