package uploads

import "errors"

var (
	ErrNotFound        = errors.New("upload not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrTooLarge        = errors.New("upload too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrExtractFailed   = errors.New("could not read text from file")
)
