package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"

	"github.com/Masterminds/squirrel"

	"github.com/champlain/campus/internal/app/models"
	"github.com/champlain/campus/internal/pkg/dberrors"
	"github.com/champlain/campus/internal/pkg/logger"
)

var _ CourseRepository = (*SQLiteCourseRepository)(nil)

// SQLiteCourseRepository stores courses in a SQLite database. It is meant
// for local development and single-node deployments.
type SQLiteCourseRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewSQLiteCourseRepository creates a new SQLiteCourseRepository
func NewSQLiteCourseRepository(db *sql.DB) *SQLiteCourseRepository {
	return &SQLiteCourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// FindByCourseID retrieves a course by its business id
func (r *SQLiteCourseRepository) FindByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	query, args, err := r.sb.Select(courseColumns...).
		From(coursesTable).
		Where(squirrel.Eq{"course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by course id: %w", err)
	}
	return course, nil
}

// FindAll streams all courses in insertion order
func (r *SQLiteCourseRepository) FindAll(ctx context.Context) iter.Seq2[*models.Course, error] {
	return func(yield func(*models.Course, error) bool) {
		query, args, err := r.sb.Select(courseColumns...).
			From(coursesTable).
			OrderBy("id ASC").
			ToSql()
		if err != nil {
			yield(nil, fmt.Errorf("failed to build get all courses query: %w", err))
			return
		}

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			logger.Error().Err(err).Msg("Error executing get all courses query")
			yield(nil, fmt.Errorf("error querying courses: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			course, err := scanCourse(rows)
			if err != nil {
				yield(nil, fmt.Errorf("error scanning course row: %w", err))
				return
			}
			if !yield(course, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("error iterating course rows: %w", err))
		}
	}
}

// Save inserts or updates a course
func (r *SQLiteCourseRepository) Save(ctx context.Context, course *models.Course) error {
	if course.ID == 0 {
		query, args, err := r.sb.Insert(coursesTable).SetMap(courseValues(course)).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create course query: %w", err)
		}
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return ErrCourseAlreadyExists
			}
			logger.Error().Err(err).Msg("Error executing create course query")
			return fmt.Errorf("error creating course: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("error reading new course id: %w", err)
		}
		course.ID = id
		return nil
	}

	query, args, err := r.sb.Update(coursesTable).
		SetMap(courseValues(course)).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Int64("id", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	return requireAffected(res)
}

// Delete removes a course by its internal key
func (r *SQLiteCourseRepository) Delete(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Delete(coursesTable).Where(squirrel.Eq{"id": course.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", course.ID).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	return requireAffected(res)
}

// Count returns the number of stored courses
func (r *SQLiteCourseRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(coursesTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return n, nil
}

// Ping checks the database connection
func (r *SQLiteCourseRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
