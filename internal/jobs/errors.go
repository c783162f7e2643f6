package jobs

import "errors"

var (
	ErrNotFound     = errors.New("job description not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrProtected means the site served a bot challenge instead of the posting.
	ErrProtected = errors.New("job site is protected by bot detection")
	// ErrFetchFailed covers network errors and error statuses from the job site.
	ErrFetchFailed = errors.New("failed to fetch job page")
)
