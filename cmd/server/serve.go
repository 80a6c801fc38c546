package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/cache"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/config"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/gql"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/handler"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/kafka"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/outbox"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/repository"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/service"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/tx"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the GraphQL HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serve(config.Load(), autoMigrate)
			return nil
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "run schema migration before serving")
	return cmd
}

func serve(cfg config.Config, autoMigrate bool) {
	// Observability
	observability.InitLogger(cfg.ServiceName)
	log := observability.Log
	defer log.Sync()

	if cfg.TracingEnabled {
		tp, err := observability.InitTracer(cfg.ServiceName, cfg.JaegerURL)
		if err != nil {
			log.Fatal("failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error("failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := repository.NewDB(ctx, cfg.DatabaseURL, repository.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close()

	gdb, err := repository.NewGorm(db)
	if err != nil {
		log.Fatal("gorm init failed", zap.Error(err))
	}

	if autoMigrate {
		migrateOnStart(ctx, func(ctx context.Context) error { return repository.Migrate(ctx, gdb) })
	}

	// HTTP Server for Observability (Metrics & Health)
	obsMux := chi.NewRouter()
	obsMux.Use(observability.MetricsMiddleware(cfg.ServiceName))
	obsMux.Handle("/metrics", promhttp.Handler())
	obsMux.Get("/health/live", observability.HealthLiveHandler)
	obsMux.Get("/health/ready", observability.HealthReadyHandler(db))

	obsSrv := &http.Server{Addr: cfg.ObsHTTPAddr, Handler: obsMux}
	go func() {
		log.Info("HTTP observability server started", zap.String("addr", cfg.ObsHTTPAddr))
		if err := obsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP observability server failed", zap.Error(err))
		}
	}()

	// Redis
	var memberTypeCache service.MemberTypeCache
	if cfg.RedisAddr != "" {
		rdb := cache.New(cfg.RedisAddr)
		defer rdb.Close()
		memberTypeCache = &cache.MemberTypeCache{R: rdb, TTL: cfg.MemberTypeCacheTTL}
	} else {
		log.Info("REDIS_ADDR not set, member type cache disabled")
	}

	svc := buildServices(gdb, memberTypeCache)

	// Kafka producer + outbox publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers)
		defer producer.Close()

		publisher := outbox.NewPublisher(outbox.NewRepository(gdb), producer, cfg.OutboxPollInterval, cfg.OutboxBatchSize)
		go publisher.Start(ctx)
	} else {
		log.Info("KAFKA_BROKERS not set, outbox events stay unpublished")
	}

	// GraphQL
	schema, err := gql.NewSchema(svc)
	if err != nil {
		log.Fatal("graphql schema build failed", zap.Error(err))
	}
	exec := gql.NewExecutor(schema, cfg.GraphQLDepthLimit)

	// HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.NewRouter(cfg, exec),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("graphql HTTP started",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("path", cfg.GraphQLPath),
			zap.Int("depth_limit", cfg.GraphQLDepthLimit),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("received signal, initiating shutdown")
	cancel() // stop outbox publisher

	ctxShut, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()

	_ = srv.Shutdown(ctxShut)
	_ = obsSrv.Shutdown(ctxShut)
	log.Info("blog-graphql stopped")
}

func buildServices(gdb *gorm.DB, memberTypeCache service.MemberTypeCache) gql.Services {
	txm := &tx.Manager{DB: gdb}
	outboxRepo := outbox.NewRepository(gdb)

	return gql.Services{
		Users: &service.UserService{
			Repo:   &repository.UserRepo{DB: gdb},
			Subs:   &repository.SubscriptionRepo{DB: gdb},
			Tx:     txm,
			Outbox: outboxRepo,
		},
		Posts: &service.PostService{
			Repo:   &repository.PostRepo{DB: gdb},
			Tx:     txm,
			Outbox: outboxRepo,
		},
		Profiles: &service.ProfileService{
			Repo:   &repository.ProfileRepo{DB: gdb},
			Tx:     txm,
			Outbox: outboxRepo,
		},
		MemberTypes: &service.MemberTypeService{
			Repo:  &repository.MemberTypeRepo{DB: gdb},
			Cache: memberTypeCache,
		},
	}
}
