package models

// Student is the read-only projection of a student owned by the students service.
type Student struct {
	StudentID string `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Program   string `json:"program"`
	Stuff     string `json:"stuff,omitempty"`
}
