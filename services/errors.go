package services

import "errors"

// Common service-level errors
var (
	ErrSeedNote      = errors.New("failed to seed the initial note")
	ErrInitialCommit = errors.New("failed to record the initial commit")
)
