package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brightlane-studio/portfolio-backend/internal/portfolio/domain"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ProjectRepository persists projects in the portfolio_projects table.
type ProjectRepository struct {
	db DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id::text, title, brand, description, image, category, live_url, video_url,
       tags, tech, metrics, featured, has_video, status, created_at, updated_at`

// ListPublished returns every published project, newest first.
func (r *ProjectRepository) ListPublished(ctx context.Context) ([]domain.Project, error) {
	q := `
select ` + projectColumns + `
from portfolio_projects
where status = 'published'
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// GetPublished returns the project with id if it is published.
func (r *ProjectRepository) GetPublished(ctx context.Context, id string) (*domain.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	q := `
select ` + projectColumns + `
from portfolio_projects
where id = $1 and status = 'published';
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts p as given; the caller has already assigned id and timestamps.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	metrics, err := json.Marshal(p.Metrics)
	if err != nil {
		return nil, fmt.Errorf("encode metrics: %w", err)
	}

	q := `
insert into portfolio_projects (
  id, title, brand, description, image, category, live_url, video_url,
  tags, tech, metrics, featured, has_video, status, created_at, updated_at
)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
returning ` + projectColumns + `;
`
	return scanProject(r.db.QueryRow(ctx, q,
		p.ID, p.Title, p.Brand, p.Description, p.Image, p.Category, p.LiveURL, p.VideoURL,
		p.Tags, p.Tech, metrics, p.Featured, p.HasVideo, string(p.Status), p.CreatedAt, p.UpdatedAt,
	))
}

// Update merges the non-nil fields of in into the row. A missing row yields (nil, nil).
func (r *ProjectRepository) Update(ctx context.Context, id string, in domain.UpdateInput, now time.Time) (*domain.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var metrics []byte
	if in.Metrics != nil {
		b, err := json.Marshal(in.Metrics)
		if err != nil {
			return nil, fmt.Errorf("encode metrics: %w", err)
		}
		metrics = b
	}

	var status *string
	if in.Status != nil {
		s, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		v := string(s)
		status = &v
	}

	q := `
update portfolio_projects
set title       = coalesce($2, title),
    brand       = coalesce($3, brand),
    description = coalesce($4, description),
    image       = coalesce($5, image),
    category    = coalesce($6, category),
    live_url    = coalesce($7, live_url),
    video_url   = coalesce($8, video_url),
    tags        = coalesce($9::text[], tags),
    tech        = coalesce($10::text[], tech),
    metrics     = coalesce($11::jsonb, metrics),
    featured    = coalesce($12, featured),
    has_video   = coalesce($13, has_video),
    status      = coalesce($14, status),
    updated_at  = $15
where id = $1
returning ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q,
		id, in.Title, in.Brand, in.Description, in.Image, in.Category, in.LiveURL, in.VideoURL,
		in.Tags, in.Tech, metrics, in.Featured, in.HasVideo, status, now,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Delete hard-deletes the row. Deleting a missing id is not an error.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := r.db.Exec(ctx, `delete from portfolio_projects where id = $1;`, id)
	return err
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p       domain.Project
		metrics []byte
		status  string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Brand, &p.Description, &p.Image, &p.Category, &p.LiveURL, &p.VideoURL,
		&p.Tags, &p.Tech, &metrics, &p.Featured, &p.HasVideo, &status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = domain.Status(status)
	p.Metrics = domain.DefaultMetrics()
	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &p.Metrics); err != nil {
			return nil, fmt.Errorf("decode metrics: %w", err)
		}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Tech == nil {
		p.Tech = []string{}
	}
	return &p, nil
}
