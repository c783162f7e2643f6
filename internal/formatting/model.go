package formatting

import (
	"fmt"
	"time"
)

// FormattedResume is a LaTeX rendition of a generated resume.
type FormattedResume struct {
	ID               string
	UserID           string
	OriginalResumeID string
	LatexContent     string
	Template         string
	Title            string
	CreatedAt        time.Time
}

// FormattedID builds the record id: <resumeId>_<template>_<unixMillis>.
func FormattedID(resumeID, template string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%d", resumeID, template, at.UnixMilli())
}
