package formatting

import "errors"

var (
	ErrNotFound         = errors.New("formatted resume not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrResumeNotFound   = errors.New("resume not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrGenerationFailed = errors.New("latex generation failed")
	ErrRenderFailed     = errors.New("pdf rendering failed")
)
