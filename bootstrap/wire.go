package bootstrap

import (
	"context"
	"log/slog"

	"autonews/config"
	"autonews/consumer"
	"autonews/driver"
	"autonews/handler"
	"autonews/middleware"
	"autonews/repository"
	"autonews/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config *config.Config
	DBPool *pgxpool.Pool
	Logger *slog.Logger

	JobHandler          handler.JobHandler
	IngestHandler       *handler.IngestHandler
	QueueHandler        *handler.QueueHandler
	RewriteHandler      *handler.RewriteHandler
	UploadHandler       *handler.UploadHandler
	ArticleHandler      *handler.ArticleHandler
	MonetizationHandler *handler.MonetizationHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.JWTAuthMiddleware
	RedisConsumer       *consumer.Consumer
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, log *slog.Logger) (*Dependencies, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	dbPool, err := driver.Init(ctx, &cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}

	// Repositories
	sourceRepo := repository.NewSourceRepository(dbPool, log)
	queueRepo := repository.NewQueueRepository(dbPool, log)
	articleRepo := repository.NewArticleRepository(dbPool, log)
	categoryRepo := repository.NewCategoryRepository(dbPool, log)
	monetizationRepo := repository.NewMonetizationRepository(dbPool, log)
	apiRepo := repository.NewRewriteAPIRepository(&cfg.Rewriter, log)

	// Services
	feedFetcher := service.NewFeedFetcher(cfg, log)
	articleFetcher := service.NewArticleFetcherService(cfg, log)
	ingestService := service.NewIngestService(sourceRepo, articleRepo, queueRepo, feedFetcher, articleFetcher, &cfg.Ingest, log)
	queueProcessor := service.NewQueueProcessorService(queueRepo, articleRepo, cfg, log)
	rewriteService := service.NewRewriteService(queueRepo, articleRepo, categoryRepo, apiRepo, cfg, log)
	uploadService := service.NewUploadService(queueRepo, &cfg.Ingest, log)
	healthChecker := service.NewHealthCheckerService(apiRepo, log)

	// Handlers
	scheduler := handler.NewJobScheduler(log)
	jobHandler := handler.NewJobHandler(ingestService, queueProcessor, rewriteService, healthChecker, scheduler, cfg, log)

	deps := &Dependencies{
		Config:              cfg,
		DBPool:              dbPool,
		Logger:              log,
		JobHandler:          jobHandler,
		IngestHandler:       handler.NewIngestHandler(ingestService, log),
		QueueHandler:        handler.NewQueueHandler(queueProcessor, queueRepo, log),
		RewriteHandler:      handler.NewRewriteHandler(rewriteService, log),
		UploadHandler:       handler.NewUploadHandler(uploadService, log),
		ArticleHandler:      handler.NewArticleHandler(articleRepo, categoryRepo, log),
		MonetizationHandler: handler.NewMonetizationHandler(monetizationRepo, log),
		HealthHandler:       handler.NewHealthHandler(dbPool, healthChecker, log),
		AuthMiddleware:      middleware.NewJWTAuthMiddleware(log, &cfg.Auth),
		RedisConsumer:       buildRedisConsumer(ctx, &cfg.Redis, rewriteService, log),
	}

	cleanup := func() {
		dbPool.Close()
	}

	return deps, cleanup, nil
}

func buildRedisConsumer(ctx context.Context, cfg *config.RedisConfig, rewriter service.RewriteService, log *slog.Logger) *consumer.Consumer {
	adapter := consumer.NewRewriteServiceAdapter(rewriter, log)
	eventHandler := consumer.NewRewriteEventHandler(adapter, log)

	redisConsumer, err := consumer.NewConsumer(cfg, eventHandler, log)
	if err != nil {
		log.Error("failed to create rewrite event consumer", "error", err)
		return nil
	}

	if err := redisConsumer.Start(ctx); err != nil {
		log.Error("failed to start rewrite event consumer", "error", err)
	} else if cfg.Enabled {
		log.Info("rewrite event consumer started",
			"stream", cfg.StreamKey,
			"group", cfg.GroupName)
	}

	return redisConsumer
}
