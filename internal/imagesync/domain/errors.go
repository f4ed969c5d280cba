package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var folderIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateFolderID rejects anything that is not a plain Drive id.
func ValidateFolderID(id string) error {
	if id == "" {
		return ErrMissingParams
	}
	if !folderIDPattern.MatchString(id) {
		return ErrBadFolderID
	}
	return nil
}

var (
	ErrMissingParams = errors.New("apiKey and folderId are required")
	ErrMissingFileID = errors.New("fileId is required")
	ErrNoReport      = errors.New("no sync report recorded")
	ErrBadFolderID   = errors.New("folderId may only contain letters, digits, '-' and '_'")
)

// UpstreamError is returned when the image source rejects a call.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("image source returned status %d", e.Status)
}
