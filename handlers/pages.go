package handlers

import (
	"bytes"
	"fmt"

	"git-notebook/app"
	"git-notebook/templates/pages"

	"github.com/gofiber/fiber/v2"
	"github.com/yuin/goldmark"
)

// HomePage renders the editor pre-populated with the current note. A read
// failure never breaks the render: the error lands in the textarea instead.
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := a.Autosave.Load()
		if err != nil {
			content = fmt.Sprintf("Error loading file: %v", err)
		}

		c.Set("Content-Type", "text/html; charset=utf-8")
		return pages.Editor(content, a.NoteFile).Render(c.Context(), c.Response().BodyWriter())
	}
}

// PreviewPage renders the markdown note as read-only HTML.
func PreviewPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := a.Autosave.Load()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to load note", err)
		}

		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(content), &buf); err != nil {
			return serverErrorWithDetails(c, "Failed to render note", err)
		}

		c.Set("Content-Type", "text/html; charset=utf-8")
		return pages.Preview(buf.String(), a.NoteFile).Render(c.Context(), c.Response().BodyWriter())
	}
}
