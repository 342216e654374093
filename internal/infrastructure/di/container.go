package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/audit"
	infraAuthz "github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/cache"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/metrics"
	infraRepo "github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/storage"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/config"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/jwt"
)

// auditBufferSize は監査ログの非同期バッファサイズです
const auditBufferSize = 1000

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	PgClient    *database.PostgresClient
	RedisClient *cache.RedisClient
	MinIOClient *storage.MinIOClient
	TxManager   *database.TxManager
	Metrics     *metrics.Metrics

	// Services
	JWTService    *jwt.JWTService
	RateLimiter   *cache.RateLimiter
	DisabledUsers *cache.DisabledUserStore
	AuditService  *audit.Service
	ExportStorage service.ExportStorage

	// Repositories
	UserRepo         repository.UserRepository
	MentorRepo       repository.MentorRepository
	AnswerRepo       repository.AnswerRepository
	OrganizationRepo repository.OrganizationRepository
	MentorPanelRepo  repository.MentorPanelRepository
	UserQuestionRepo repository.UserQuestionRepository
	AuditLogRepo     repository.AuditLogRepository

	// Authorization
	Evaluator          *authz.Evaluator
	PermissionResolver authz.PermissionResolver

	// UseCases
	Mentor       *MentorUseCases
	User         *UserUseCases
	Organization *OrganizationUseCases
	MentorPanel  *MentorPanelUseCases
	UserQuestion *UserQuestionUseCases

	// config
	config *config.Config
}

// NewContainer は新しいContainerを作成します
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(ctx, cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	// Metrics
	if opts.Metrics != nil {
		c.Metrics = opts.Metrics
	} else {
		c.Metrics = metrics.New()
	}

	// PostgreSQL
	if opts.PostgresPool != nil {
		c.TxManager = database.NewTxManager(opts.PostgresPool)
	} else {
		slog.Info("connecting to PostgreSQL...")
		poolConfig := database.PoolConfig{
			MaxConns:          cfg.Database.MaxConns,
			MinConns:          cfg.Database.MinConns,
			MaxConnLifetime:   cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
			HealthCheckPeriod: database.DefaultPoolConfig().HealthCheckPeriod,
		}
		pgClient, err := database.NewPostgresClient(ctx, cfg.Database.URL, poolConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.PgClient = pgClient
		c.TxManager = database.NewTxManager(pgClient.Pool())
		slog.Info("connected to PostgreSQL")
	}

	// Redis
	redisClient := opts.RedisClient
	if redisClient == nil {
		slog.Info("connecting to Redis...")
		redisConfig := cache.DefaultConfig()
		redisConfig.URL = cfg.Redis.URL
		rc, err := cache.NewRedisClient(ctx, redisConfig)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = rc
		redisClient = rc.Client()
		slog.Info("connected to Redis")
	}
	c.RateLimiter = cache.NewRateLimiter(redisClient)
	c.DisabledUsers = cache.NewDisabledUserStore(redisClient, cfg.JWT.AccessTokenExpiry)

	// Object Storage
	if opts.ExportStorage != nil {
		c.ExportStorage = opts.ExportStorage
	} else {
		minioClient, err := storage.NewMinIOClient(storage.Config{
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			BucketName:      cfg.Storage.BucketName,
			UseSSL:          cfg.Storage.UseSSL,
			Region:          cfg.Storage.Region,
			RetentionDays:   cfg.Storage.RetentionDays,
		})
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to create MinIO client: %w", err)
		}
		if err := minioClient.EnsureBucket(ctx); err != nil {
			// エクスポート以外の機能は動作するため起動は継続する
			slog.Warn("failed to ensure export bucket", "bucket", cfg.Storage.BucketName, "error", err)
		}
		c.MinIOClient = minioClient
		c.ExportStorage = storage.NewExportStorage(minioClient)
	}

	// JWT Service
	c.JWTService = jwt.NewJWTService(jwt.Config{
		SecretKey:         cfg.JWT.SecretKey,
		Issuer:            cfg.JWT.Issuer,
		Audience:          cfg.JWT.Audience,
		AccessTokenExpiry: cfg.JWT.AccessTokenExpiry,
	})

	// Repositories
	c.UserRepo = infraRepo.NewUserRepository(c.TxManager)
	c.MentorRepo = infraRepo.NewMentorRepository(c.TxManager)
	c.AnswerRepo = infraRepo.NewAnswerRepository(c.TxManager)
	c.OrganizationRepo = infraRepo.NewOrganizationRepository(c.TxManager)
	c.MentorPanelRepo = infraRepo.NewMentorPanelRepository(c.TxManager)
	c.UserQuestionRepo = infraRepo.NewUserQuestionRepository(c.TxManager)
	c.AuditLogRepo = infraRepo.NewAuditLogRepository(c.TxManager)

	// Audit
	c.AuditService = audit.NewService(c.AuditLogRepo, auditBufferSize,
		audit.WithDropCounter(c.Metrics.AuditDroppedTotal))

	// Authorization
	var clock authz.Clock = authz.SystemClock{}
	if opts.Clock != nil {
		clock = opts.Clock
	}
	c.Evaluator = authz.NewEvaluator(clock, authz.WithHomePageFreshness(cfg.Authz.HomePageFreshness))
	c.PermissionResolver = infraAuthz.NewPermissionResolver(c.Evaluator, c.MentorRepo, c.OrganizationRepo, c.Metrics)

	// UseCases
	c.Mentor = NewMentorUseCases(c, cfg.Storage.URLExpiry)
	c.User = NewUserUseCases(c)
	c.Organization = NewOrganizationUseCases(c)
	c.MentorPanel = NewMentorPanelUseCases(c)
	c.UserQuestion = NewUserQuestionUseCases(c)

	return c, nil
}

// Config は設定を返します
func (c *Container) Config() *config.Config {
	return c.config
}

// Close はリソースをクリーンアップします
func (c *Container) Close() error {
	var errs []error

	if c.AuditService != nil {
		c.AuditService.Shutdown()
	}

	if c.PgClient != nil {
		c.PgClient.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}

// Options はContainer作成時のオプションを定義します
type Options struct {
	PostgresPool  *pgxpool.Pool
	RedisClient   *redis.Client
	ExportStorage service.ExportStorage
	Metrics       *metrics.Metrics
	Clock         authz.Clock
}
