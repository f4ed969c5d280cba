package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
)

const (
	lastReportKey = "portfolio:sync:last"    // Latest report JSON
	historyKey    = "portfolio:sync:history" // List of report JSON, newest first
	historyLen    = 20
	reportTTL     = 30 * 24 * time.Hour
)

// ReportRepository stores reconciliation reports in Redis.
type ReportRepository struct {
	client *redis.Client
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(client *redis.Client) *ReportRepository {
	return &ReportRepository{client: client}
}

// Save records r as the latest report and prepends it to the history.
func (r *ReportRepository) Save(ctx context.Context, report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, lastReportKey, data, reportTTL)
	pipe.LPush(ctx, historyKey, data)
	pipe.LTrim(ctx, historyKey, 0, historyLen-1)
	pipe.Expire(ctx, historyKey, reportTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Last returns the most recent report or domain.ErrNoReport.
func (r *ReportRepository) Last(ctx context.Context) (*domain.Report, error) {
	data, err := r.client.Get(ctx, lastReportKey).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNoReport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// History returns up to limit reports, newest first.
func (r *ReportRepository) History(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 || limit > historyLen {
		limit = historyLen
	}

	items, err := r.client.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	out := make([]domain.Report, 0, len(items))
	for _, item := range items {
		var report domain.Report
		if err := json.Unmarshal([]byte(item), &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		out = append(out, report)
	}
	return out, nil
}
