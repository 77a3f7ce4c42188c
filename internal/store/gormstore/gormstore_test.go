package gormstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gradebook-system/internal/store"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	return New(gdb), mock
}

func TestListStudents(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectQuery(`SELECT \* FROM "students" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fname", "lname"}).
			AddRow(1, "Sylvia", "Plath").
			AddRow(2, "Anne", "Sexton"))

	students, err := s.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []store.Student{
		{ID: 1, FName: "Sylvia", LName: "Plath"},
		{ID: 2, FName: "Anne", LName: "Sexton"},
	}, students)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStudent(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectQuery(`SELECT \* FROM "students" WHERE "students"\."id" = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fname", "lname"}).
			AddRow(1, "Sylvia", "Plath"))

	student, found, err := s.GetStudent(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, store.Student{ID: 1, FName: "Sylvia", LName: "Plath"}, student)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStudentMissing(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectQuery(`SELECT \* FROM "students" WHERE "students"\."id" = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fname", "lname"}))

	student, found, err := s.GetStudent(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, student)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentsOf(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectQuery(`SELECT \* FROM "assignments" WHERE student_id = \$1 ORDER BY id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "title", "grade"}).
			AddRow(1, 1, "Essay #1", 85).
			AddRow(2, 1, "Poem #1", 90))

	assignments, err := s.AssignmentsOf(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []store.Assignment{
		{ID: 1, StudentID: 1, Title: "Essay #1", Grade: 85},
		{ID: 2, StudentID: 1, Title: "Poem #1", Grade: 90},
	}, assignments)
	assert.NoError(t, mock.ExpectationsWereMet())
}
