package dto

import "github.com/champlain/campus/internal/app/models"

// CourseRequest carries the caller-editable course fields. It has no id:
// ids are assigned by the server.
type CourseRequest struct {
	CourseNumber string  `json:"courseNumber"`
	CourseName   string  `json:"courseName"`
	NumHours     int     `json:"numHours" binding:"gte=0"`
	NumCredits   float64 `json:"numCredits" binding:"gte=0"`
	Department   string  `json:"department"`
}

// CourseResponse is the public representation of a course.
type CourseResponse struct {
	CourseID     string  `json:"courseId"`
	CourseNumber string  `json:"courseNumber"`
	CourseName   string  `json:"courseName"`
	NumHours     int     `json:"numHours"`
	NumCredits   float64 `json:"numCredits"`
	Department   string  `json:"department"`
}

// ToCourseEntity builds a course from a request. Identity fields are left
// empty for the caller to fill in.
func ToCourseEntity(req CourseRequest) models.Course {
	return models.Course{
		CourseNumber: req.CourseNumber,
		CourseName:   req.CourseName,
		NumHours:     req.NumHours,
		NumCredits:   req.NumCredits,
		Department:   req.Department,
	}
}

// ToCourseResponse maps a stored course to its public representation.
func ToCourseResponse(c models.Course) CourseResponse {
	return CourseResponse{
		CourseID:     c.CourseID,
		CourseNumber: c.CourseNumber,
		CourseName:   c.CourseName,
		NumHours:     c.NumHours,
		NumCredits:   c.NumCredits,
		Department:   c.Department,
	}
}
