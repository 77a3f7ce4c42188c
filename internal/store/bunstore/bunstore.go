// Package bunstore implements the store capability with bun's select
// builder: queries are composed from table and column names through the
// fluent chain instead of hand-written SQL.
package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/gradebook-system/internal/store"
)

type studentRow struct {
	ID    int    `bun:"id"`
	FName string `bun:"fname"`
	LName string `bun:"lname"`
}

type assignmentRow struct {
	ID        int    `bun:"id"`
	StudentID int    `bun:"student_id"`
	Title     string `bun:"title"`
	Grade     int    `bun:"grade"`
}

type Store struct {
	db *bun.DB
}

// New wraps an existing handle. Used directly by tests.
func New(sqldb *sql.DB) *Store {
	return &Store{db: bun.NewDB(sqldb, pgdialect.New())}
}

// Open connects to postgres and verifies the connection.
func Open(dsn string) (*Store, error) {
	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return New(sqldb), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ListStudents(ctx context.Context) ([]store.Student, error) {
	var rows []studentRow
	err := s.db.NewSelect().
		Table("students").
		Column("id", "fname", "lname").
		OrderExpr("id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	students := make([]store.Student, 0, len(rows))
	for _, r := range rows {
		students = append(students, store.Student{ID: r.ID, FName: r.FName, LName: r.LName})
	}
	return students, nil
}

func (s *Store) GetStudent(ctx context.Context, id int) (store.Student, bool, error) {
	var row studentRow
	err := s.db.NewSelect().
		Table("students").
		Column("id", "fname", "lname").
		Where("id = ?", id).
		Scan(ctx, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Student{}, false, nil
	}
	if err != nil {
		return store.Student{}, false, fmt.Errorf("get student %d: %w", id, err)
	}
	return store.Student{ID: row.ID, FName: row.FName, LName: row.LName}, true, nil
}

func (s *Store) AssignmentsOf(ctx context.Context, studentID int) ([]store.Assignment, error) {
	var rows []assignmentRow
	err := s.db.NewSelect().
		Table("assignments").
		Column("id", "student_id", "title", "grade").
		Where("student_id = ?", studentID).
		OrderExpr("id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list assignments of %d: %w", studentID, err)
	}

	assignments := make([]store.Assignment, 0, len(rows))
	for _, r := range rows {
		assignments = append(assignments, store.Assignment{
			ID:        r.ID,
			StudentID: r.StudentID,
			Title:     r.Title,
			Grade:     r.Grade,
		})
	}
	return assignments, nil
}
