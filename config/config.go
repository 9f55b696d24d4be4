package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `json:"port" validate:"required,numeric"`
	Env         string `json:"env" validate:"required,oneof=development production test"`
	RepoDir     string `json:"repo_dir" validate:"required"`
	NoteFile    string `json:"note_file" validate:"required,notefilename"`
	AuthorName  string `json:"author_name" validate:"required"`
	AuthorEmail string `json:"author_email" validate:"required,email"`
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		RepoDir:     GetEnv("REPO_DIR", "notes_repo"),
		NoteFile:    GetEnv("NOTE_FILENAME", "my_first_note.md"),
		AuthorName:  GetEnv("GIT_AUTHOR_NAME", "notebook"),
		AuthorEmail: GetEnv("GIT_AUTHOR_EMAIL", "notebook@localhost"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
