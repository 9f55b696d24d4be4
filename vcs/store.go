package vcs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Config holds the settings for a repository instance. Passing it in
// explicitly keeps stores independently constructible for tests.
type Config struct {
	Dir         string
	AuthorName  string
	AuthorEmail string
}

// ResultKind classifies the outcome of a commit attempt.
type ResultKind int

const (
	// Committed means a new snapshot was recorded.
	Committed ResultKind = iota
	// NoChanges means the working tree matched the last commit. This is a
	// normal autosave outcome, not an error.
	NoChanges
	// Failed means the commit could not be recorded. Autosave must survive
	// this, so it is reported in the result rather than returned as an error.
	Failed
)

// CommitResult describes what happened to a single commit attempt.
type CommitResult struct {
	Kind   ResultKind
	Hash   string
	Detail string
}

// Store wraps a git repository rooted at a fixed working directory. It
// assumes a single writer; concurrent commits are out of scope.
type Store struct {
	cfg  Config
	repo *git.Repository
}

// Open ensures the repository directory exists and is initialized, then
// returns a Store bound to it. It is idempotent and safe to call on every
// startup. Any error here is an initialization failure: the caller must
// refuse to start serving.
func Open(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create repository directory %s: %w", cfg.Dir, err)
	}

	repo, err := git.PlainInit(cfg.Dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(cfg.Dir)
	} else if err == nil {
		slog.Info("initialized git repository", "dir", cfg.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository in %s: %w", cfg.Dir, err)
	}

	return &Store{cfg: cfg, repo: repo}, nil
}

// Commit stages all working-tree changes and records them under the given
// message. It never returns a Go error: failures are carried in the result
// so a broken commit cannot take down the editing session.
func (s *Store) Commit(message string) CommitResult {
	wt, err := s.repo.Worktree()
	if err != nil {
		return CommitResult{Kind: Failed, Detail: err.Error()}
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return CommitResult{Kind: Failed, Detail: err.Error()}
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  s.cfg.AuthorName,
			Email: s.cfg.AuthorEmail,
			When:  time.Now(),
		},
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		return CommitResult{Kind: NoChanges}
	}
	if err != nil {
		return CommitResult{Kind: Failed, Detail: err.Error()}
	}

	slog.Debug("recorded commit", "hash", hash.String()[:8], "message", message)
	return CommitResult{Kind: Committed, Hash: hash.String()}
}

// Head returns the short hash of the current HEAD commit, if any.
func (s *Store) Head() (string, bool) {
	ref, err := s.repo.Head()
	if err != nil {
		return "", false
	}
	return ref.Hash().String()[:8], true
}
