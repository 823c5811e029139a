// Package services holds the business logic of the courses and enrollments
// services:
//   - CourseService: CRUD over the course store
//   - EnrollmentService: CRUD over the enrollment store, resolving students
//     and courses against their owning services on every write
package services
