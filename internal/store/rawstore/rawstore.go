// Package rawstore implements the store capability with hand-written
// parameterized SQL over database/sql and the pgx driver.
package rawstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/gradebook-system/internal/store"
)

type Store struct {
	db *sql.DB
}

// New wraps an existing handle. Used directly by tests.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to postgres and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ListStudents(ctx context.Context) ([]store.Student, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, fname, lname FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := []store.Student{}
	for rows.Next() {
		var st store.Student
		if err := rows.Scan(&st.ID, &st.FName, &st.LName); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// GetStudent binds id as a query parameter; untrusted input is never
// concatenated into the SQL text.
func (s *Store) GetStudent(ctx context.Context, id int) (store.Student, bool, error) {
	var st store.Student
	err := s.db.QueryRowContext(ctx,
		`SELECT id, fname, lname FROM students WHERE id = $1`, id).
		Scan(&st.ID, &st.FName, &st.LName)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Student{}, false, nil
	}
	if err != nil {
		return store.Student{}, false, fmt.Errorf("get student %d: %w", id, err)
	}
	return st, true, nil
}

func (s *Store) AssignmentsOf(ctx context.Context, studentID int) ([]store.Assignment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, student_id, title, grade FROM assignments WHERE student_id = $1 ORDER BY id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("list assignments of %d: %w", studentID, err)
	}
	defer rows.Close()

	assignments := []store.Assignment{}
	for rows.Next() {
		var a store.Assignment
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Title, &a.Grade); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assignments of %d: %w", studentID, err)
	}
	return assignments, nil
}
