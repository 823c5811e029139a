package services

import (
	"context"
	"errors"

	"github.com/champlain/campus/internal/app/clients"
	"github.com/champlain/campus/internal/app/models"
)

const (
	christineID       = "c3540a89-cb47-4c96-888e-ff96708db4d8"
	unknownStudentID  = "c3540a89-cb47-4c96-888e-ff96708db4j4"
	webServicesID     = "9a29fff7-564a-4cc9-8fe1-36f6ca9bc223"
	shakespeareID     = "d819e4f4-25af-4d33-91e9-2c45f0071606"
	unknownCourseID   = "00000000-0000-0000-0000-000000000000"
	unreachableRemote = "unreachable"
)

var errConnectionRefused = errors.New("connection refused")

// fakeStudents answers from a fixed map and counts calls.
type fakeStudents struct {
	students map[string]models.Student
	calls    int
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{students: map[string]models.Student{
		christineID: {StudentID: christineID, FirstName: "Christine", LastName: "Gerard", Program: "Computer Science"},
	}}
}

func (f *fakeStudents) GetStudent(_ context.Context, id string) clients.Result[models.Student] {
	f.calls++
	if id == unreachableRemote {
		return clients.ErrorResult[models.Student](errConnectionRefused)
	}
	s, ok := f.students[id]
	if !ok {
		return clients.NotFoundResult[models.Student]()
	}
	return clients.FoundResult(&s)
}

type fakeCourses struct {
	courses map[string]models.Course
	calls   int
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{courses: map[string]models.Course{
		webServicesID: {CourseID: webServicesID, CourseNumber: "trs-075", CourseName: "Web Services", NumHours: 45, NumCredits: 3.0, Department: "Computer Science"},
		shakespeareID: {CourseID: shakespeareID, CourseNumber: "ygo-675", CourseName: "Shakespeare's Greatest Works", NumHours: 45, NumCredits: 3.0, Department: "English"},
	}}
}

func (f *fakeCourses) GetCourse(_ context.Context, id string) clients.Result[models.Course] {
	f.calls++
	if id == unreachableRemote {
		return clients.ErrorResult[models.Course](errConnectionRefused)
	}
	c, ok := f.courses[id]
	if !ok {
		return clients.NotFoundResult[models.Course]()
	}
	return clients.FoundResult(&c)
}
