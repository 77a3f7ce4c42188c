// Package web wires the two-route HTTP surface shared by all three
// server variants.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewApp builds the Fiber app with both routes registered. Template
// interpolation goes through html/template, which escapes by default.
func NewApp(h *Handler) *fiber.App {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Get("/", h.ListStudents)
	app.Get("/student/:id", h.StudentDetail)

	return app
}
