package domain

import (
	"errors"
	"fmt"
)

var (
	// input validation
	ErrInvalidFormat = errors.New("invalid format")
	ErrTooLarge      = errors.New("too large")

	// parsing and rendering
	ErrMalformedContent = errors.New("malformed content")
	ErrRender           = errors.New("render error")

	// job lifecycle
	ErrDuplicateSession = errors.New("session already has a running job")
	ErrInvalidSession   = errors.New("invalid session id")
	ErrJobNotFound      = errors.New("job not found")
	ErrNotReady         = errors.New("result is not ready")
	ErrJobFailed        = errors.New("job failed")
	ErrStalledJob       = errors.New("job stalled")

	// journal
	ErrNoArtifactsAvailable = errors.New("no artifacts available")
	ErrComposition          = errors.New("composition error")

	// storage
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// RowError reports a data row that failed validation. Row is one-based.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedContent, e.Err}
}
