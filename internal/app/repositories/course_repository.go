package repositories

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/pkg/dberrors"
	"github.com/champlain/campus/internal/pkg/logger"
)

// ErrCourseAlreadyExists is returned when a course with the same business id exists.
var ErrCourseAlreadyExists = errors.New("course with this course id already exists")

var _ CourseRepository = (*PostgresCourseRepository)(nil)

// PostgresCourseRepository handles course database operations on PostgreSQL
type PostgresCourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresCourseRepository creates a new PostgresCourseRepository
func NewPostgresCourseRepository(db *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindByCourseID retrieves a course by its business id
func (r *PostgresCourseRepository) FindByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From(coursesTable).
		Where(squirrel.Eq{"course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by course id: %w", err)
	}

	return course, nil
}

// FindAll streams all courses in insertion order
func (r *PostgresCourseRepository) FindAll(ctx context.Context) iter.Seq2[*models.Course, error] {
	return func(yield func(*models.Course, error) bool) {
		sql, args, err := r.sb.Select(courseColumns...).
			From(coursesTable).
			OrderBy("id ASC").
			ToSql()
		if err != nil {
			yield(nil, fmt.Errorf("failed to build get all courses query: %w", err))
			return
		}

		rows, err := r.db.Query(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Msg("Error executing get all courses query")
			yield(nil, fmt.Errorf("error querying courses: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			course, err := scanCourse(rows)
			if err != nil {
				logger.Error().Err(err).Msg("Error scanning course row during get all")
				yield(nil, fmt.Errorf("error scanning course row: %w", err))
				return
			}
			if !yield(course, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			logger.Error().Err(err).Msg("Error iterating course rows")
			yield(nil, fmt.Errorf("error iterating course rows: %w", err))
		}
	}
}

// Save inserts or updates a course
func (r *PostgresCourseRepository) Save(ctx context.Context, course *models.Course) error {
	if course.ID == 0 {
		return r.insert(ctx, course)
	}
	return r.update(ctx, course)
}

func (r *PostgresCourseRepository) insert(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert(coursesTable).
		SetMap(courseValues(course)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseIDConstraint) {
			return ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

func (r *PostgresCourseRepository) update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update(coursesTable).
		SetMap(courseValues(course)).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseIDConstraint) {
			return ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Int64("id", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a course by its internal key
func (r *PostgresCourseRepository) Delete(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Delete(coursesTable).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", course.ID).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of stored courses
func (r *PostgresCourseRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(coursesTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return n, nil
}

// Ping checks the database connection
func (r *PostgresCourseRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
