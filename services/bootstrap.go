package services

import (
	"fmt"
	"log/slog"

	"git-notebook/vcs"
)

// WelcomeNote seeds a brand-new notebook so the first page load has content.
const WelcomeNote = "# Welcome to your Version-Controlled Notebook!\n\nStart typing here. Changes will be automatically committed to Git."

// Bootstrap brings a fresh working directory up to a usable state: if the
// note file is missing it is seeded with the welcome text and committed.
// Idempotent: reruns on an already-bootstrapped directory do nothing, so the
// initial commit is never duplicated.
func Bootstrap(notes NoteStore, versions VersionStore) error {
	if notes.Exists() {
		return nil
	}

	if err := notes.Write(WelcomeNote); err != nil {
		return fmt.Errorf("%w: %v", ErrSeedNote, err)
	}
	slog.Info("seeded welcome note", "path", notes.Path())

	result := versions.Commit("Initial setup of the notebook file.")
	switch result.Kind {
	case vcs.Committed:
		slog.Info("recorded initial commit", "hash", result.Hash[:8])
		return nil
	case vcs.NoChanges:
		// Seed already committed by an earlier partial bootstrap.
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInitialCommit, result.Detail)
	}
}
