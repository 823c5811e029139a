package dto

import "github.com/champlain/campus/internal/app/models"

// EnrollmentRequest is the body accepted when creating or updating an enrollment.
type EnrollmentRequest struct {
	EnrollmentYear int             `json:"enrollmentYear"`
	Semester       models.Semester `json:"semester" binding:"required,semester"`
	StudentID      string          `json:"studentId" binding:"required"`
	CourseID       string          `json:"courseId" binding:"required"`
}

// EnrollmentResponse is the public representation of an enrollment.
type EnrollmentResponse struct {
	EnrollmentID     string          `json:"enrollmentId"`
	EnrollmentYear   int             `json:"enrollmentYear"`
	Semester         models.Semester `json:"semester"`
	StudentID        string          `json:"studentId"`
	StudentFirstName string          `json:"studentFirstName"`
	StudentLastName  string          `json:"studentLastName"`
	CourseID         string          `json:"courseId"`
	CourseNumber     string          `json:"courseNumber"`
	CourseName       string          `json:"courseName"`
}

// ToEnrollmentEntity merges a request with the student and course it refers
// to. Identity fields are left empty for the caller to fill in.
func ToEnrollmentEntity(req EnrollmentRequest, student models.Student, course models.Course) models.Enrollment {
	return models.Enrollment{
		EnrollmentYear:   req.EnrollmentYear,
		Semester:         req.Semester,
		StudentID:        req.StudentID,
		StudentFirstName: student.FirstName,
		StudentLastName:  student.LastName,
		CourseID:         req.CourseID,
		CourseNumber:     course.CourseNumber,
		CourseName:       course.CourseName,
	}
}

// ToEnrollmentResponse maps a stored enrollment to its public representation.
func ToEnrollmentResponse(e models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:     e.EnrollmentID,
		EnrollmentYear:   e.EnrollmentYear,
		Semester:         e.Semester,
		StudentID:        e.StudentID,
		StudentFirstName: e.StudentFirstName,
		StudentLastName:  e.StudentLastName,
		CourseID:         e.CourseID,
		CourseNumber:     e.CourseNumber,
		CourseName:       e.CourseName,
	}
}
