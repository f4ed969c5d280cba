package domain

import (
	"fmt"
	"time"
)

// Image is a candidate image hosted in the external folder.
type Image struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// URL is the public address derived from the image id.
func (i Image) URL() string {
	return ImageURL(i.ID)
}

// ImageURL derives the public view URL for a Drive file id.
func ImageURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", fileID)
}

// Report summarises one reconciliation pass.
type Report struct {
	Success       bool      `json:"success"`
	Updated       int       `json:"updated"`
	Errors        []string  `json:"errors"`
	TotalImages   int       `json:"totalImages"`
	TotalProjects int       `json:"totalProjects"`
	FolderID      string    `json:"folderId,omitempty"`
	StartedAt     time.Time `json:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt"`
}
