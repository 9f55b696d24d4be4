package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, f func(w *strings.Builder) error) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, f(&sb))
	return sb.String()
}

func TestEditorEscapesNoteContent(t *testing.T) {
	html := render(t, func(w *strings.Builder) error {
		return Editor("<script>alert(1)</script>", "note.md").Render(context.Background(), w)
	})

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, html, "File: note.md")
}

func TestEditorCarriesDebouncer(t *testing.T) {
	html := render(t, func(w *strings.Builder) error {
		return Editor("body", "note.md").Render(context.Background(), w)
	})

	// The single-slot timer: each edit clears any pending save before arming
	// a new one with the fixed idle delay.
	assert.Contains(t, html, "const SAVE_DELAY_MS = 2000")
	assert.Contains(t, html, "clearTimeout(saveTimer)")
	assert.Contains(t, html, "fetch('/save'")
}

func TestPreviewPassesRenderedBodyThrough(t *testing.T) {
	html := render(t, func(w *strings.Builder) error {
		return Preview("<h1>Title</h1>", "note.md").Render(context.Background(), w)
	})

	assert.Contains(t, html, "<h1>Title</h1>")
}
