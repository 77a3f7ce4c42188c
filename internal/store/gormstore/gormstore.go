// Package gormstore implements the store capability with GORM models
// and a declared one-to-many association between students and their
// assignments.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gradebook-system/internal/store"
)

type Student struct {
	ID          int    `gorm:"primaryKey"`
	FName       string `gorm:"column:fname"`
	LName       string `gorm:"column:lname"`
	Assignments []Assignment
}

func (Student) TableName() string { return "students" }

type Assignment struct {
	ID        int `gorm:"primaryKey"`
	StudentID int
	Title     string
	Grade     int
}

func (Assignment) TableName() string { return "assignments" }

type Store struct {
	db *gorm.DB
}

// New wraps an existing GORM handle. Used directly by tests.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to postgres. GORM's own logger is discarded so the
// service emits nothing beyond its startup notice.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) ListStudents(ctx context.Context) ([]store.Student, error) {
	var models []Student
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	students := make([]store.Student, 0, len(models))
	for _, m := range models {
		students = append(students, store.Student{ID: m.ID, FName: m.FName, LName: m.LName})
	}
	return students, nil
}

func (s *Store) GetStudent(ctx context.Context, id int) (store.Student, bool, error) {
	var m Student
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.Student{}, false, nil
	}
	if err != nil {
		return store.Student{}, false, fmt.Errorf("get student %d: %w", id, err)
	}
	return store.Student{ID: m.ID, FName: m.FName, LName: m.LName}, true, nil
}

// AssignmentsOf queries the association explicitly rather than walking
// a lazily loaded relationship.
func (s *Store) AssignmentsOf(ctx context.Context, studentID int) ([]store.Assignment, error) {
	var models []Assignment
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list assignments of %d: %w", studentID, err)
	}

	assignments := make([]store.Assignment, 0, len(models))
	for _, m := range models {
		assignments = append(assignments, store.Assignment{
			ID:        m.ID,
			StudentID: m.StudentID,
			Title:     m.Title,
			Grade:     m.Grade,
		})
	}
	return assignments, nil
}
