package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestSaveRequest struct {
	Content string `json:"content" validate:"max=64"`
}

type TestStoreConfig struct {
	RepoDir  string `json:"repo_dir" validate:"required"`
	NoteFile string `json:"note_file" validate:"required,notefilename"`
}

func TestValidator_SaveRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       TestSaveRequest
		wantError bool
	}{
		{
			name:      "Valid content",
			req:       TestSaveRequest{Content: "short note"},
			wantError: false,
		},
		{
			name:      "Empty content is allowed",
			req:       TestSaveRequest{Content: ""},
			wantError: false,
		},
		{
			name:      "Oversized content",
			req:       TestSaveRequest{Content: strings.Repeat("a", 65)},
			wantError: true,
		},
		{
			name:      "Multibyte content is counted in characters, not bytes",
			req:       TestSaveRequest{Content: strings.Repeat("é", 64)},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "content must be at most 64 characters")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_NoteFilename(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		cfg       TestStoreConfig
		wantError bool
	}{
		{
			name:      "Valid filename",
			cfg:       TestStoreConfig{RepoDir: "notes_repo", NoteFile: "my_first_note.md"},
			wantError: false,
		},
		{
			name:      "Path separator rejected",
			cfg:       TestStoreConfig{RepoDir: "notes_repo", NoteFile: "../escape.md"},
			wantError: true,
		},
		{
			name:      "Git metadata name rejected",
			cfg:       TestStoreConfig{RepoDir: "notes_repo", NoteFile: ".git"},
			wantError: true,
		},
		{
			name:      "Missing repo dir",
			cfg:       TestStoreConfig{RepoDir: "", NoteFile: "note.md"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.cfg)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
