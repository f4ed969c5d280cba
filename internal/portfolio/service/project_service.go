package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brightlane-studio/portfolio-backend/internal/platform/logger"
	"github.com/brightlane-studio/portfolio-backend/internal/portfolio/domain"
)

// Store is implemented by repository.ProjectRepository and repository.MemoryRepository.
type Store interface {
	ListPublished(ctx context.Context) ([]domain.Project, error)
	GetPublished(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, in domain.UpdateInput, now time.Time) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store Store
	now   func() time.Time
	newID func() string
}

// Option customises a ProjectService.
type Option func(*ProjectService)

// WithClock overrides the time source used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *ProjectService) { s.now = now }
}

// WithIDGenerator overrides project id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *ProjectService) { s.newID = newID }
}

// NewProjectService creates a new project service
func NewProjectService(store Store, opts ...Option) *ProjectService {
	s := &ProjectService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all published projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListPublished(ctx)
}

// Get returns a published project or domain.ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.GetPublished(ctx, id)
}

// Create validates in, fills defaults and persists the project.
func (s *ProjectService) Create(ctx context.Context, in domain.CreateInput) (*domain.Project, error) {
	p, err := domain.NewProject(s.newID(), in, s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	logger.For(ctx, "portfolio.create").Info().Str("project_id", created.ID).Str("brand", created.Brand).Msg("project created")
	return created, nil
}

// Update applies a partial update. A nonexistent id yields (nil, nil).
func (s *ProjectService) Update(ctx context.Context, id string, in domain.UpdateInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, in, s.now())
}

// SetImage overwrites a project's image regardless of its status.
func (s *ProjectService) SetImage(ctx context.Context, id, image string) (*domain.Project, error) {
	p, err := s.store.Update(ctx, id, domain.UpdateInput{Image: &image}, s.now())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ListForSync returns the projects the image sync considers.
func (s *ProjectService) ListForSync(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListPublished(ctx)
}

// Delete removes a project; deleting a missing id succeeds.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.For(ctx, "portfolio.delete").Info().Str("project_id", id).Msg("project deleted")
	return nil
}
