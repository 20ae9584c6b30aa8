package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/animal-shelter/docs"
	"github.com/sbilibin2017/animal-shelter/internal/config"
	"github.com/sbilibin2017/animal-shelter/internal/db"
	"github.com/sbilibin2017/animal-shelter/internal/jwt"
	"github.com/sbilibin2017/animal-shelter/internal/logger"
	"github.com/sbilibin2017/animal-shelter/internal/middlewares"
	"github.com/sbilibin2017/animal-shelter/internal/repositories"
	"github.com/sbilibin2017/animal-shelter/internal/router"
	"github.com/sbilibin2017/animal-shelter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Animal Shelter API
// @version 1.0.0
// @description REST API for managing species, pets, adoptions and medical records of an animal shelter
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(context.Background(), configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newCredentialStorage picks the persistence backend of the credential store.
func newCredentialStorage(ctx context.Context, cfg *config.Config) (repositories.Storage, func() error, error) {
	if cfg.Credentials.Backend != config.CredentialsRedis {
		logger.Log.Infow("Using credential file", "path", cfg.Credentials.File)
		return repositories.NewFileStorage(cfg.Credentials.File), func() error { return nil }, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("redis connection error: %w", err)
	}
	logger.Log.Infow("Using Redis credential storage", "addr", cfg.Redis.Addr(), "key", cfg.Credentials.RedisKey)
	return repositories.NewRedisStorage(rdb, cfg.Credentials.RedisKey), rdb.Close, nil
}

// newChangePublisher returns a publisher backed by Kafka, or a disabled one
// when no brokers are configured.
func newChangePublisher(cfg config.KafkaConfig) (*services.ChangePublisher, func() error) {
	if len(cfg.Brokers) == 0 {
		logger.Log.Warnw("KAFKA_BROKERS not set, change events are disabled")
		return services.NewChangePublisher(nil), func() error { return nil }
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	logger.Log.Infow("Publishing change events", "brokers", cfg.Brokers, "topic", cfg.Topic)
	publisher := services.NewChangePublisher(writer, services.WithDeferrer(middlewares.AfterCommit))
	return publisher, writer.Close
}

// run initializes the logger, database, credential store and HTTP server.
// It sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	sqlDB, err := db.Open(ctx, cfg.DB.Driver, cfg.DataSource(), cfg.Postgres.MaxOpenConns, cfg.Postgres.MaxIdleConns)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if err := db.Migrate(ctx, sqlDB); err != nil {
		return err
	}
	logger.Log.Infow("Database ready", "driver", cfg.DB.Driver)

	storage, closeStorage, err := newCredentialStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	users := repositories.NewCredentialRepository(storage)
	if err := users.Load(ctx); err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.TokenTTL()),
	)

	publisher, closePublisher := newChangePublisher(cfg.Kafka)
	defer closePublisher()

	// Initialize repositories
	speciesRepo := repositories.NewSpeciesRepository(sqlDB, middlewares.GetTxFromContext)
	petRepo := repositories.NewPetRepository(sqlDB, middlewares.GetTxFromContext)
	adoptionRepo := repositories.NewAdoptionRepository(sqlDB, middlewares.GetTxFromContext)
	recordRepo := repositories.NewMedicalRecordRepository(sqlDB, middlewares.GetTxFromContext)

	handler := router.New(router.Config{
		DB:             sqlDB,
		Tokens:         tokens,
		Roles:          users,
		Auth:           services.NewAuthService(users, users, tokens),
		Species:        services.NewSpeciesService(speciesRepo, speciesRepo, publisher),
		Pets:           services.NewPetService(petRepo, petRepo, publisher),
		Adoptions:      services.NewAdoptionService(adoptionRepo, adoptionRepo, publisher),
		MedicalRecords: services.NewMedicalRecordService(recordRepo, recordRepo, publisher),
		SwaggerURL:     fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr()),
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
