package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brightlane-studio/portfolio-backend/internal/portfolio/domain"
)

// MemoryRepository keeps projects in process memory. Used with
// STORE_DRIVER=memory for local development and as a test double.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Project
	seq   map[string]int
	next  int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]*domain.Project),
		seq:   make(map[string]int),
	}
}

func (r *MemoryRepository) ListPublished(ctx context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, 0, len(r.items))
	for _, p := range r.items {
		if p.Visible() {
			out = append(out, clone(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	return out, nil
}

func (r *MemoryRepository) GetPublished(ctx context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok || !p.Visible() {
		return nil, domain.ErrNotFound
	}
	c := clone(p)
	return &c, nil
}

func (r *MemoryRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := clone(p)
	r.items[p.ID] = &c
	r.next++
	r.seq[p.ID] = r.next

	out := clone(p)
	return &out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, in domain.UpdateInput, now time.Time) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	in.Apply(p, now)

	out := clone(p)
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	delete(r.seq, id)
	return nil
}

func clone(p *domain.Project) domain.Project {
	c := *p
	c.Tags = append([]string{}, p.Tags...)
	c.Tech = append([]string{}, p.Tech...)
	if p.VideoURL != nil {
		v := *p.VideoURL
		c.VideoURL = &v
	}
	return c
}
