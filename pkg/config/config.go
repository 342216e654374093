package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を定義します
type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	JWT      JWTConfig      `envPrefix:"JWT_"`
	Storage  StorageConfig  `envPrefix:"MINIO_"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Security SecurityConfig `envPrefix:"SECURITY_"`
	Authz    AuthzConfig    `envPrefix:"AUTHZ_"`
	Job      JobConfig      `envPrefix:"JOB_"`
}

// ServerConfig はサーバー設定を定義します
type ServerConfig struct {
	Port            int           `env:"PORT"             envDefault:"8080"`
	Debug           bool          `env:"DEBUG"            envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// DatabaseConfig はデータベース設定を定義します
type DatabaseConfig struct {
	URL             string        `env:"URL,required,notEmpty"`
	MaxConns        int32         `env:"MAX_CONNS"          envDefault:"20"`
	MinConns        int32         `env:"MIN_CONNS"          envDefault:"2"`
	MaxConnLifetime time.Duration `env:"MAX_CONN_LIFETIME"  envDefault:"1h"`
	MaxConnIdleTime time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"30m"`
}

// RedisConfig はRedis設定を定義します
type RedisConfig struct {
	URL string `env:"URL" envDefault:"redis://localhost:6379/0"`
}

// JWTConfig はJWT設定を定義します
type JWTConfig struct {
	SecretKey         string        `env:"SECRET_KEY,required,notEmpty"`
	Issuer            string        `env:"ISSUER"              envDefault:"mentorpal"`
	Audience          []string      `env:"AUDIENCE"            envDefault:"mentor-graphql" envSeparator:","`
	AccessTokenExpiry time.Duration `env:"ACCESS_TOKEN_EXPIRY" envDefault:"24h"`
}

// StorageConfig はエクスポート先オブジェクトストレージの設定を定義します
type StorageConfig struct {
	Endpoint        string        `env:"ENDPOINT"          envDefault:"localhost:9000"`
	AccessKeyID     string        `env:"ACCESS_KEY_ID"`
	SecretAccessKey string        `env:"SECRET_ACCESS_KEY"`
	BucketName      string        `env:"BUCKET"            envDefault:"mentor-exports"`
	UseSSL          bool          `env:"USE_SSL"           envDefault:"false"`
	Region          string        `env:"REGION"            envDefault:"us-east-1"`
	URLExpiry       time.Duration `env:"URL_EXPIRY"        envDefault:"15m"`
	RetentionDays   int           `env:"RETENTION_DAYS"    envDefault:"7"`
}

// LogConfig はログ設定を定義します
type LogConfig struct {
	Level  string `env:"LEVEL"  envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// SecurityConfig はセキュリティ設定を定義します
type SecurityConfig struct {
	CORSOrigins      []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	RateLimitEnabled bool     `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
}

// AuthzConfig は認可判定の設定を定義します
type AuthzConfig struct {
	// ホームページ経由のアクセスとみなす期間
	HomePageFreshness time.Duration `env:"HOMEPAGE_FRESHNESS" envDefault:"5h"`
}

// JobConfig はバックグラウンドジョブの設定を定義します
type JobConfig struct {
	ArchiveInterval time.Duration `env:"ARCHIVE_INTERVAL" envDefault:"1h"`
}

// Load は環境変数から設定を読み込みます
// カレントディレクトリに .env があれば先に読み込みます
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse は現在の環境変数のみから設定を読み込みます
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の整合性を検証します
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}
	if len(c.JWT.SecretKey) < 32 {
		return errors.New("JWT_SECRET_KEY must be at least 32 characters")
	}
	if c.Authz.HomePageFreshness <= 0 {
		return errors.New("AUTHZ_HOMEPAGE_FRESHNESS must be positive")
	}
	if c.Job.ArchiveInterval <= 0 {
		return errors.New("JOB_ARCHIVE_INTERVAL must be positive")
	}
	return nil
}
