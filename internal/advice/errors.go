package advice

import "errors"

var (
	// ErrNotFound means the resume has no advice at the requested position.
	ErrNotFound       = errors.New("advice not found")
	ErrResumeNotFound = errors.New("resume not found")
	ErrInvalidInput   = errors.New("invalid input")
	// ErrInvalidOutput means the model answer was not a valid advice document.
	ErrInvalidOutput    = errors.New("invalid advice output")
	ErrGenerationFailed = errors.New("advice generation failed")
)
