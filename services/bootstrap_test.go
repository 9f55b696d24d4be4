package services

import (
	"errors"
	"testing"

	"git-notebook/notes"
	"git-notebook/vcs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupStores(t *testing.T) (*notes.Store, *vcs.Store) {
	t.Helper()

	dir := t.TempDir()
	versionStore, err := vcs.Open(vcs.Config{
		Dir:         dir,
		AuthorName:  "Test",
		AuthorEmail: "test@example.com",
	})
	require.NoError(t, err)

	noteStore := notes.NewStore(notes.Config{Dir: dir, Filename: "note.md"})
	return noteStore, versionStore
}

func TestBootstrapSeedsWelcomeNote(t *testing.T) {
	noteStore, versionStore := setupStores(t)

	require.NoError(t, Bootstrap(noteStore, versionStore))

	content, err := noteStore.Read()
	require.NoError(t, err)
	assert.Equal(t, WelcomeNote, content)

	_, ok := versionStore.Head()
	assert.True(t, ok, "expected an initial commit")
}

func TestBootstrapIsIdempotent(t *testing.T) {
	noteStore, versionStore := setupStores(t)

	require.NoError(t, Bootstrap(noteStore, versionStore))
	head, ok := versionStore.Head()
	require.True(t, ok)

	// Rerunning must not fail and must not duplicate the initial commit.
	require.NoError(t, Bootstrap(noteStore, versionStore))
	again, ok := versionStore.Head()
	require.True(t, ok)
	assert.Equal(t, head, again)
}

func TestBootstrapKeepsExistingNote(t *testing.T) {
	noteStore, versionStore := setupStores(t)

	require.NoError(t, noteStore.Write("user content"))
	require.NoError(t, Bootstrap(noteStore, versionStore))

	content, err := noteStore.Read()
	require.NoError(t, err)
	assert.Equal(t, "user content", content)
}

func TestBootstrapReportsSeedFailure(t *testing.T) {
	noteStore := new(MockNoteStore)
	versionStore := new(MockVersionStore)
	noteStore.On("Exists").Return(false)
	noteStore.On("Write", WelcomeNote).Return(errors.New("read-only filesystem"))

	err := Bootstrap(noteStore, versionStore)
	assert.ErrorIs(t, err, ErrSeedNote)
	versionStore.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBootstrapReportsInitialCommitFailure(t *testing.T) {
	noteStore := new(MockNoteStore)
	versionStore := new(MockVersionStore)
	noteStore.On("Exists").Return(false)
	noteStore.On("Write", WelcomeNote).Return(nil)
	noteStore.On("Path").Return("note.md")
	versionStore.On("Commit", "Initial setup of the notebook file.").
		Return(vcs.CommitResult{Kind: vcs.Failed, Detail: "corrupt object store"})

	err := Bootstrap(noteStore, versionStore)
	assert.ErrorIs(t, err, ErrInitialCommit)
}
