// Package store defines the records and the read-only data-access
// capability that all three storage strategies implement.
package store

import "context"

type Student struct {
	ID    int
	FName string
	LName string
}

// FullName is computed, never stored.
func (s Student) FullName() string {
	return s.FName + " " + s.LName
}

// Assignment belongs to exactly one student. Grade is documented as
// 1-100 but the bound is not enforced anywhere in this system.
type Assignment struct {
	ID        int
	StudentID int
	Title     string
	Grade     int
}

// Store is the capability shared by the raw, builder and ORM strategies.
// Given the same seeded data, every implementation must return
// field-for-field identical records.
type Store interface {
	// ListStudents returns all students ordered by id.
	ListStudents(ctx context.Context) ([]Student, error)

	// GetStudent returns the student with the given id. A missing id is
	// reported through the bool, not as an error.
	GetStudent(ctx context.Context, id int) (Student, bool, error)

	// AssignmentsOf returns the assignments owned by the given student,
	// ordered by id. Unknown students yield an empty slice.
	AssignmentsOf(ctx context.Context, studentID int) ([]Assignment, error)
}
