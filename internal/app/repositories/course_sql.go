package repositories

import (
	"github.com/champlain/campus/internal/app/models"
)

const (
	coursesTable = "courses"
	// courseIDConstraint is the unique constraint on the business id in the postgres schema.
	courseIDConstraint = "courses_course_id_key"
)

var courseColumns = []string{"id", "course_id", "course_number", "course_name", "num_hours", "num_credits", "department"}

// rowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(&c.ID, &c.CourseID, &c.CourseNumber, &c.CourseName, &c.NumHours, &c.NumCredits, &c.Department)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// courseValues returns the mutable columns of a course for INSERT/UPDATE.
func courseValues(c *models.Course) map[string]interface{} {
	return map[string]interface{}{
		"course_id":     c.CourseID,
		"course_number": c.CourseNumber,
		"course_name":   c.CourseName,
		"num_hours":     c.NumHours,
		"num_credits":   c.NumCredits,
		"department":    c.Department,
	}
}
