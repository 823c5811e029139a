package models

// Semester defines the academic term an enrollment belongs to
type Semester string

// Semester constants
const (
	SemesterFall   Semester = "FALL"
	SemesterWinter Semester = "WINTER"
	SemesterSummer Semester = "SUMMER"
)

// Semesters lists every accepted semester value.
var Semesters = []Semester{SemesterFall, SemesterWinter, SemesterSummer}

// IsValid reports whether s is one of the known semesters.
func (s Semester) IsValid() bool {
	switch s {
	case SemesterFall, SemesterWinter, SemesterSummer:
		return true
	}
	return false
}
