package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig はデータベース接続プールの設定
type PoolConfig struct {
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// DefaultPoolConfig はデフォルトのプール設定を返す
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxConns:          20,
		MinConns:          2,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
	}
}

// PostgresClient はPostgreSQLへの接続を管理する
type PostgresClient struct {
	pool *pgxpool.Pool
}

// NewPostgresClient は接続プールを作成し、疎通を確認する
func NewPostgresClient(ctx context.Context, databaseURL string, cfg PoolConfig) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if cfg.MaxConns > 0 {
		config.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		config.MinConns = cfg.MinConns
	}
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnIdleTime = cfg.MaxConnIdleTime
	config.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresClient{pool: pool}, nil
}

// Pool はコネクションプールを返す
func (c *PostgresClient) Pool() *pgxpool.Pool {
	return c.pool
}

// Close はコネクションプールを閉じる
func (c *PostgresClient) Close() {
	c.pool.Close()
}

// Health はデータベースのヘルスチェックを行う
func (c *PostgresClient) Health(ctx context.Context) error {
	return c.pool.Ping(ctx)
}
