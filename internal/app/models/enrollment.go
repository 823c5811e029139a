package models

// Enrollment records a student taking a course in a given term.
//
// The student and course name fields are copied from the remote services when
// the enrollment is written and are not refreshed afterwards.
type Enrollment struct {
	ID             string   `json:"-"` // Internal store key
	EnrollmentID   string   `json:"enrollmentId"`
	EnrollmentYear int      `json:"enrollmentYear"`
	Semester       Semester `json:"semester"`

	StudentID        string `json:"studentId"`
	StudentFirstName string `json:"studentFirstName"`
	StudentLastName  string `json:"studentLastName"`

	CourseID     string `json:"courseId"`
	CourseNumber string `json:"courseNumber"`
	CourseName   string `json:"courseName"`
}
