package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
	"github.com/brightlane-studio/portfolio-backend/internal/metrics"
	"github.com/brightlane-studio/portfolio-backend/internal/platform/logger"
	portfolio "github.com/brightlane-studio/portfolio-backend/internal/portfolio/domain"
)

// ImageLister lists the candidate images in a folder, in source order.
type ImageLister interface {
	ListImages(ctx context.Context, folderID string) ([]domain.Image, error)
}

// ListerFactory builds an ImageLister for a caller-supplied API key.
type ListerFactory func(ctx context.Context, apiKey string) (ImageLister, error)

// Projects is the slice of the portfolio service the sync needs.
type Projects interface {
	ListForSync(ctx context.Context) ([]portfolio.Project, error)
	SetImage(ctx context.Context, id, image string) (*portfolio.Project, error)
}

// ReportStore keeps the outcome of past passes.
type ReportStore interface {
	Save(ctx context.Context, r *domain.Report) error
	Last(ctx context.Context) (*domain.Report, error)
	History(ctx context.Context, limit int) ([]domain.Report, error)
}

// Reconciler attaches externally hosted images to projects.
type Reconciler struct {
	projects Projects
	lister   ListerFactory
	reports  ReportStore
	now      func() time.Time
}

// NewReconciler creates a reconciler. reports may be nil.
func NewReconciler(projects Projects, lister ListerFactory, reports ReportStore) *Reconciler {
	if reports == nil {
		reports = NoopReportStore{}
	}
	return &Reconciler{
		projects: projects,
		lister:   lister,
		reports:  reports,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile runs one best-effort pass. Only the two initial fetches can fail
// the pass; per-project failures are collected in the report.
func (r *Reconciler) Reconcile(ctx context.Context, apiKey, folderID string) (*domain.Report, error) {
	if apiKey == "" || folderID == "" {
		return nil, domain.ErrMissingParams
	}
	if err := domain.ValidateFolderID(folderID); err != nil {
		return nil, err
	}

	lister, err := r.lister(ctx, apiKey)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("create image lister: %w", err)
	}
	return r.ReconcileWith(ctx, lister, folderID)
}

// ReconcileWith runs a pass against an already-built lister.
func (r *Reconciler) ReconcileWith(ctx context.Context, lister ImageLister, folderID string) (*domain.Report, error) {
	if err := domain.ValidateFolderID(folderID); err != nil {
		return nil, err
	}
	log := logger.For(ctx, "imagesync.reconcile")
	started := r.now()

	images, err := lister.ListImages(ctx, folderID)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("list images: %w", err)
	}

	projects, err := r.projects.ListForSync(ctx)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("list projects: %w", err)
	}

	report := &domain.Report{
		Success:       true,
		Errors:        []string{},
		TotalImages:   len(images),
		TotalProjects: len(projects),
		FolderID:      folderID,
		StartedAt:     started,
	}

	for _, p := range projects {
		img, ok := Match(p, images)
		if !ok {
			continue
		}
		if _, err := r.projects.SetImage(ctx, p.ID, img.URL()); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", p.Title, err))
			metrics.SyncProjectErrorsTotal.Inc()
			log.Warn().Err(err).Str("project_id", p.ID).Str("file_id", img.ID).Msg("image update failed")
			continue
		}
		report.Updated++
		metrics.SyncProjectsUpdatedTotal.Inc()
		log.Debug().Str("project_id", p.ID).Str("file", img.Name).Msg("image attached")
	}

	report.FinishedAt = r.now()
	metrics.SyncRunsTotal.WithLabelValues("completed").Inc()
	log.Info().
		Int("updated", report.Updated).
		Int("errors", len(report.Errors)).
		Int("images", report.TotalImages).
		Int("projects", report.TotalProjects).
		Msg("reconciliation finished")

	if err := r.reports.Save(ctx, report); err != nil {
		log.Warn().Err(err).Msg("failed to store sync report")
	}
	return report, nil
}

// SetImage attaches a specific file to a project without matching.
func (r *Reconciler) SetImage(ctx context.Context, projectID, fileID string) (*portfolio.Project, error) {
	if fileID == "" {
		return nil, domain.ErrMissingFileID
	}
	return r.projects.SetImage(ctx, projectID, domain.ImageURL(fileID))
}

// LastReport returns the most recent stored report.
func (r *Reconciler) LastReport(ctx context.Context) (*domain.Report, error) {
	return r.reports.Last(ctx)
}

// History returns up to limit stored reports, newest first.
func (r *Reconciler) History(ctx context.Context, limit int) ([]domain.Report, error) {
	return r.reports.History(ctx, limit)
}

// NoopReportStore discards reports. Used when Redis is not configured.
type NoopReportStore struct{}

func (NoopReportStore) Save(context.Context, *domain.Report) error { return nil }

func (NoopReportStore) Last(context.Context) (*domain.Report, error) {
	return nil, domain.ErrNoReport
}

func (NoopReportStore) History(context.Context, int) ([]domain.Report, error) {
	return []domain.Report{}, nil
}
