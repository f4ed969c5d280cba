package cronjob

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
)

// Reconciler is the part of service.Reconciler the scheduler drives.
type Reconciler interface {
	Reconcile(ctx context.Context, apiKey, folderID string) (*domain.Report, error)
}

// Scheduler runs image reconciliation on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	rec      Reconciler
	apiKey   string
	folderID string

	// ctx is cancelled by Stop so an in-flight pass ends with the process.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler validates spec (6 fields, seconds first) and registers the job.
func NewScheduler(spec string, rec Reconciler, apiKey, folderID string) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		rec:      rec,
		apiKey:   apiKey,
		folderID: folderID,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		s.cancel()
		return nil, err
	}
	return s, nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	log.Info().Msg("image sync scheduler started")
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish. If ctx ends
// first the running pass is cancelled.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	s.cancel()
}

func (s *Scheduler) run() {
	log.Info().Msg("scheduled image sync started")
	report, err := s.rec.Reconcile(s.ctx, s.apiKey, s.folderID)
	if err != nil {
		log.Error().Err(err).Msg("scheduled image sync failed")
		return
	}
	log.Info().Int("updated", report.Updated).Int("errors", len(report.Errors)).
		Msg("scheduled image sync completed")
}
