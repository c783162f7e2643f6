package resumes

import "errors"

var (
	ErrNotFound     = errors.New("resume not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrJobNotFound means the referenced job description does not exist for the user.
	ErrJobNotFound = errors.New("job description not found")
	// ErrGenerationFailed wraps upstream LLM failures and empty completions.
	ErrGenerationFailed = errors.New("resume generation failed")
	// ErrEmptyContent means a stored resume has no text to render.
	ErrEmptyContent = errors.New("resume content is empty")
	ErrRenderFailed = errors.New("pdf rendering failed")
)
