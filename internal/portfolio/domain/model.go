package domain

import (
	"strings"
	"time"
)

// Status controls whether a project is visible on the public site.
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
	StatusArchived  Status = "archived"
)

// ParseStatus validates s against the known statuses. Empty means published.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusPublished:
		return StatusPublished, nil
	case StatusDraft:
		return StatusDraft, nil
	case StatusArchived:
		return StatusArchived, nil
	}
	return "", ErrInvalidStatus
}

// Metrics are free-form display strings shown on a case-study card, e.g. "420%" and "0.6s".
type Metrics struct {
	Conversion string `json:"conversion"`
	LoadTime   string `json:"load_time"`
}

// DefaultMetrics is applied when a project is created without metrics.
func DefaultMetrics() Metrics {
	return Metrics{Conversion: "0%", LoadTime: "0s"}
}

// Project is a portfolio case study. Storage-agnostic; shared by the store,
// the API and the image sync.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Brand       string    `json:"brand"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	LiveURL     string    `json:"live_url"`
	VideoURL    *string   `json:"video_url,omitempty"`
	Tags        []string  `json:"tags"`
	Tech        []string  `json:"tech"`
	Metrics     Metrics   `json:"metrics"`
	Featured    bool      `json:"featured"`
	HasVideo    bool      `json:"has_video"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Visible reports whether the project may be served publicly.
func (p *Project) Visible() bool {
	return p.Status == StatusPublished
}

// CreateInput is the body of a create request.
type CreateInput struct {
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	LiveURL     string   `json:"live_url"`
	VideoURL    *string  `json:"video_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	Metrics     *Metrics `json:"metrics,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	HasVideo    bool     `json:"has_video,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// Validate reports every missing required field at once.
func (in CreateInput) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"brand", in.Brand},
		{"description", in.Description},
		{"image", in.Image},
		{"category", in.Category},
		{"live_url", in.LiveURL},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if _, err := ParseStatus(in.Status); err != nil {
		return err
	}
	return nil
}

// NewProject builds the record to persist from a validated input. Defaults are
// filled in and both timestamps are set to now.
func NewProject(id string, in CreateInput, now time.Time) (*Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	status, _ := ParseStatus(in.Status)

	metrics := DefaultMetrics()
	if in.Metrics != nil {
		metrics = *in.Metrics
	}

	return &Project{
		ID:          id,
		Title:       in.Title,
		Brand:       in.Brand,
		Description: in.Description,
		Image:       in.Image,
		Category:    in.Category,
		LiveURL:     in.LiveURL,
		VideoURL:    in.VideoURL,
		Tags:        nonNil(in.Tags),
		Tech:        nonNil(in.Tech),
		Metrics:     metrics,
		Featured:    in.Featured,
		HasVideo:    in.HasVideo,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateInput is a partial update. Nil fields keep their stored value.
type UpdateInput struct {
	Title       *string   `json:"title,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Category    *string   `json:"category,omitempty"`
	LiveURL     *string   `json:"live_url,omitempty"`
	VideoURL    *string   `json:"video_url,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Tech        *[]string `json:"tech,omitempty"`
	Metrics     *Metrics  `json:"metrics,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
	HasVideo    *bool     `json:"has_video,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// Validate only checks the status value; every other field is free-form.
func (in UpdateInput) Validate() error {
	if in.Status != nil {
		if _, err := ParseStatus(*in.Status); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges in into p and stamps UpdatedAt.
func (in UpdateInput) Apply(p *Project, now time.Time) {
	setString(&p.Title, in.Title)
	setString(&p.Brand, in.Brand)
	setString(&p.Description, in.Description)
	setString(&p.Image, in.Image)
	setString(&p.Category, in.Category)
	setString(&p.LiveURL, in.LiveURL)
	if in.VideoURL != nil {
		v := *in.VideoURL
		p.VideoURL = &v
	}
	if in.Tags != nil {
		p.Tags = nonNil(*in.Tags)
	}
	if in.Tech != nil {
		p.Tech = nonNil(*in.Tech)
	}
	if in.Metrics != nil {
		p.Metrics = *in.Metrics
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.HasVideo != nil {
		p.HasVideo = *in.HasVideo
	}
	if in.Status != nil {
		p.Status, _ = ParseStatus(*in.Status)
	}
	p.UpdatedAt = now
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
