package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CreateInput {
	return CreateInput{
		Title:       "Kotn Storefront",
		Brand:       "Kotn",
		Description: "Headless commerce rebuild",
		Image:       "https://cdn.example.com/kotn.jpg",
		Category:    "ecommerce",
		LiveURL:     "https://kotn.com",
	}
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"":          StatusPublished,
		"published": StatusPublished,
		" Draft ":   StatusDraft,
		"ARCHIVED":  StatusArchived,
	} {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatus("hidden")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateInput_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validInput().Validate())
	})

	t.Run("reports every missing field", func(t *testing.T) {
		in := validInput()
		in.Title = ""
		in.LiveURL = "   "

		err := in.Validate()
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"title", "live_url"}, verr.Fields)
		assert.Equal(t, "missing required fields: title, live_url", verr.Error())
	})

	t.Run("invalid status", func(t *testing.T) {
		in := validInput()
		in.Status = "secret"
		assert.ErrorIs(t, in.Validate(), ErrInvalidStatus)
	})
}

func TestNewProject_Defaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	p, err := NewProject("id-1", validInput(), now)
	require.NoError(t, err)

	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, StatusPublished, p.Status)
	assert.Equal(t, DefaultMetrics(), p.Metrics)
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Tech)
	assert.Empty(t, p.Tags)
	assert.False(t, p.Featured)
	assert.False(t, p.HasVideo)
	assert.Nil(t, p.VideoURL)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.True(t, p.Visible())
}

func TestUpdateInput_Apply(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p, err := NewProject("id-1", validInput(), created)
	require.NoError(t, err)
	before := *p

	title := "Kotn Rebrand"
	tags := []string{"shopify", "headless"}
	draft := "draft"
	later := created.Add(time.Hour)

	UpdateInput{Title: &title, Tags: &tags, Status: &draft}.Apply(p, later)

	assert.Equal(t, "Kotn Rebrand", p.Title)
	assert.Equal(t, tags, p.Tags)
	assert.Equal(t, StatusDraft, p.Status)
	assert.False(t, p.Visible())
	assert.Equal(t, later, p.UpdatedAt)

	assert.Equal(t, before.Brand, p.Brand)
	assert.Equal(t, before.Description, p.Description)
	assert.Equal(t, before.Image, p.Image)
	assert.Equal(t, before.Metrics, p.Metrics)
	assert.Equal(t, before.CreatedAt, p.CreatedAt)
}

func TestUpdateInput_Validate(t *testing.T) {
	bad := "gone"
	assert.ErrorIs(t, UpdateInput{Status: &bad}.Validate(), ErrInvalidStatus)
	assert.NoError(t, UpdateInput{}.Validate())
}
