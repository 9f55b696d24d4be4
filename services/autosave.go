package services

import (
	"fmt"
	"time"

	"git-notebook/metrics"
	"git-notebook/models"
	"git-notebook/vcs"
)

// AutosaveService turns a save request into a note write followed by a
// commit. It is stateless across requests: every save stands alone.
type AutosaveService struct {
	notes    NoteStore
	versions VersionStore
	recorder *metrics.Recorder
}

// NewAutosaveService creates a new autosave coordinator.
func NewAutosaveService(notes NoteStore, versions VersionStore, recorder *metrics.Recorder) *AutosaveService {
	return &AutosaveService{
		notes:    notes,
		versions: versions,
		recorder: recorder,
	}
}

// Load returns the current note contents for the editor page.
func (s *AutosaveService) Load() (string, error) {
	return s.notes.Read()
}

// Save writes the content and records it as a commit, mapping every outcome
// to a message the editor can show. A failed commit is reported in the
// outcome, never as an error: autosave must not end the editing session.
func (s *AutosaveService) Save(content string) models.SaveOutcome {
	start := time.Now()

	if err := s.notes.Write(content); err != nil {
		s.recorder.IncSave(metrics.OutcomeWriteFailed)
		return models.SaveOutcome{
			Status:  models.StatusError,
			Message: fmt.Sprintf("File write failed: %v", err),
		}
	}

	now := time.Now()
	message := "Autosave: " + now.Format("2006-01-02 15:04:05")

	result := s.versions.Commit(message)
	s.recorder.ObserveSaveDuration(time.Since(start))

	switch result.Kind {
	case vcs.NoChanges:
		s.recorder.IncSave(metrics.OutcomeNoChanges)
		return models.SaveOutcome{
			Status:  models.StatusSuccess,
			Message: fmt.Sprintf("No changes detected (Autosave attempted at %s).", now.Format("15:04:05")),
		}
	case vcs.Committed:
		s.recorder.IncSave(metrics.OutcomeCommitted)
		return models.SaveOutcome{
			Status:  models.StatusSuccess,
			Message: fmt.Sprintf("Change committed successfully! (%s)", message),
		}
	default:
		s.recorder.IncSave(metrics.OutcomeCommitFailed)
		// Reported as a success-status response with the detail embedded,
		// matching the reference behavior the client is written against.
		return models.SaveOutcome{
			Status:  models.StatusSuccess,
			Message: "Git Commit Failed: " + result.Detail,
		}
	}
}
