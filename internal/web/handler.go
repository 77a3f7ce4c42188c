package web

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/gradebook-system/internal/store"
)

// Handler serves the two read-only pages over whichever store strategy
// it was constructed with.
type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) ListStudents(c fiber.Ctx) error {
	students, err := h.store.ListStudents(c.Context())
	if err != nil {
		return err
	}
	return c.Render("list", fiber.Map{
		"Students": students,
	})
}

func (h *Handler) StudentDetail(c fiber.Ctx) error {
	// A non-integer id behaves exactly like a missing student. The id
	// never reaches the database as text.
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Render("detail", fiber.Map{
			"Found":       false,
			"Student":     store.Student{},
			"Assignments": []store.Assignment{},
		})
	}

	student, found, err := h.store.GetStudent(c.Context(), id)
	if err != nil {
		return err
	}
	assignments, err := h.store.AssignmentsOf(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Render("detail", fiber.Map{
		"Found":       found,
		"Student":     student,
		"Assignments": assignments,
	})
}
