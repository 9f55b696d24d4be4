package services

import "git-notebook/vcs"

// NoteStore is the persistence surface the autosave pipeline needs.
type NoteStore interface {
	Read() (string, error)
	Write(content string) error
	Exists() bool
	Path() string
}

// VersionStore records working-tree snapshots as commits.
type VersionStore interface {
	Commit(message string) vcs.CommitResult
	Head() (string, bool)
}
