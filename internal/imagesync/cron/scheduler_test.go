package cronjob

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
)

type countingReconciler struct {
	calls          int
	apiKey, folder string
	err            error
	hasDeadline    bool
	ctxErr         error
}

func (c *countingReconciler) Reconcile(ctx context.Context, apiKey, folderID string) (*domain.Report, error) {
	c.calls++
	c.apiKey, c.folder = apiKey, folderID
	_, c.hasDeadline = ctx.Deadline()
	c.ctxErr = ctx.Err()
	if c.err != nil {
		return nil, c.err
	}
	return &domain.Report{Success: true, Errors: []string{}}, nil
}

func TestNewScheduler_RejectsBadSpec(t *testing.T) {
	_, err := NewScheduler("every night", &countingReconciler{}, "k", "f")
	assert.Error(t, err)

	_, err = NewScheduler("0 0 3 * *", &countingReconciler{}, "k", "f")
	assert.Error(t, err, "five-field specs are rejected when seconds are enabled")
}

func TestScheduler_RunPassesCredentials(t *testing.T) {
	rec := &countingReconciler{}
	s, err := NewScheduler("0 0 3 * * *", rec, "key", "folder")
	require.NoError(t, err)

	s.run()
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "key", rec.apiKey)
	assert.Equal(t, "folder", rec.folder)
	assert.False(t, rec.hasDeadline, "a pass has no deadline of its own")

	rec.err = errors.New("drive down")
	s.run()
	assert.Equal(t, 2, rec.calls)
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := NewScheduler("0 0 3 * * *", &countingReconciler{}, "k", "f")
	require.NoError(t, err)

	s.Start()
	s.Stop(context.Background())
}

func TestScheduler_StopCancelsLaterPasses(t *testing.T) {
	rec := &countingReconciler{}
	s, err := NewScheduler("0 0 3 * * *", rec, "k", "f")
	require.NoError(t, err)

	s.Stop(context.Background())
	s.run()
	assert.ErrorIs(t, rec.ctxErr, context.Canceled)
}
