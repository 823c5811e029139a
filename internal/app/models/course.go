package models

// Course represents a course offered by a department.
type Course struct {
	ID           int64   `json:"-" db:"id"` // Internal primary key, never exposed
	CourseID     string  `json:"courseId" db:"course_id"`
	CourseNumber string  `json:"courseNumber" db:"course_number"`
	CourseName   string  `json:"courseName" db:"course_name"`
	NumHours     int     `json:"numHours" db:"num_hours"`
	NumCredits   float64 `json:"numCredits" db:"num_credits"`
	Department   string  `json:"department" db:"department"`
}
