package app

import (
	"log/slog"

	"git-notebook/services"
	"git-notebook/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Autosave  *services.AutosaveService
	NoteFile  string
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(autosave *services.AutosaveService, noteFile string, logger *slog.Logger) *App {
	return &App{
		Autosave:  autosave,
		NoteFile:  noteFile,
		Validator: validator.New(),
		Logger:    logger,
	}
}
