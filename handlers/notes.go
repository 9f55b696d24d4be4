package handlers

import (
	"git-notebook/app"
	"git-notebook/models"

	"github.com/gofiber/fiber/v2"
)

// SaveNote accepts a save submission and delegates to the autosave
// coordinator. An absent content field means an empty note. Commit failures
// come back with HTTP 200 and the detail in the message field; the editor
// only branches on the status field.
func SaveNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := models.SaveRequest{Content: c.FormValue("content", "")}

		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		outcome := a.Autosave.Save(req.Content)
		return c.JSON(outcome)
	}
}
