package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/champlain/campus/internal/app/models"
)

func TestToCourseEntity_LeavesIdentityEmpty(t *testing.T) {
	c := ToCourseEntity(CourseRequest{
		CourseNumber: "trs-075",
		CourseName:   "Web Services",
		NumHours:     45,
		NumCredits:   3.0,
		Department:   "Computer Science",
	})

	assert.Zero(t, c.ID)
	assert.Empty(t, c.CourseID)
	assert.Equal(t, "trs-075", c.CourseNumber)
	assert.Equal(t, 45, c.NumHours)
	assert.Equal(t, 3.0, c.NumCredits)
}

func TestToCourseResponse(t *testing.T) {
	resp := ToCourseResponse(models.Course{
		ID:           12,
		CourseID:     "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223",
		CourseNumber: "trs-075",
		CourseName:   "Web Services",
		NumHours:     45,
		NumCredits:   3.0,
		Department:   "Computer Science",
	})

	assert.Equal(t, CourseResponse{
		CourseID:     "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223",
		CourseNumber: "trs-075",
		CourseName:   "Web Services",
		NumHours:     45,
		NumCredits:   3.0,
		Department:   "Computer Science",
	}, resp)
}

func TestToEnrollmentEntity_MergesSnapshots(t *testing.T) {
	req := EnrollmentRequest{
		EnrollmentYear: 2021,
		Semester:       models.SemesterFall,
		StudentID:      "c3540a89-cb47-4c96-888e-ff96708db4d8",
		CourseID:       "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223",
	}
	student := models.Student{StudentID: req.StudentID, FirstName: "Christine", LastName: "Gerard", Program: "Computer Science"}
	course := models.Course{CourseID: req.CourseID, CourseNumber: "trs-075", CourseName: "Web Services"}

	e := ToEnrollmentEntity(req, student, course)

	assert.Empty(t, e.ID)
	assert.Empty(t, e.EnrollmentID)
	assert.Equal(t, 2021, e.EnrollmentYear)
	assert.Equal(t, models.SemesterFall, e.Semester)
	assert.Equal(t, "Christine", e.StudentFirstName)
	assert.Equal(t, "Gerard", e.StudentLastName)
	assert.Equal(t, "trs-075", e.CourseNumber)
	assert.Equal(t, "Web Services", e.CourseName)
	assert.Equal(t, req.CourseID, e.CourseID)

	resp := ToEnrollmentResponse(e)
	assert.Equal(t, e.StudentFirstName, resp.StudentFirstName)
	assert.Equal(t, e.CourseName, resp.CourseName)
}
