package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type DBOptions struct {
	DSN       string
	ConnectTO time.Duration
	PingTO    time.Duration
}

func (o *DBOptions) defaults() error {
	if o.DSN == "" {
		return fmt.Errorf("database DSN is not set")
	}
	if o.ConnectTO == 0 {
		o.ConnectTO = 5 * time.Second
	}
	if o.PingTO == 0 {
		o.PingTO = 2 * time.Second
	}
	return nil
}

// OpenDB opens the pgx pool used by the project store.
func OpenDB(ctx context.Context, opt DBOptions) (*pgxpool.Pool, error) {
	if err := opt.defaults(); err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	cfg, err := pgxpool.ParseConfig(opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(cctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return pool, nil
}

// OpenSQL opens a database/sql handle over lib/pq, used by the migrate command.
func OpenSQL(ctx context.Context, opt DBOptions) (*sql.DB, error) {
	if err := opt.defaults(); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// OpenRedis connects to REDIS_URL. An empty URL returns a nil client.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisPinger adapts a redis client to the health check's Ping(ctx) error.
type RedisPinger struct {
	Client *redis.Client
}

func (p RedisPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}
