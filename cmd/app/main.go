package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastfeet/api"
	"fastfeet/cmd"
	fastfeethttp "fastfeet/internal/adapters/in/http"
	"fastfeet/internal/adapters/out/kafka"
	"fastfeet/internal/adapters/out/postgres"
	fastredis "fastfeet/internal/adapters/out/redis"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/metrics"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(postgres.MakeConnectionString(
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient, err := fastredis.NewClient(ctx, configs.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	var publisher ports.NotificationPublisher
	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		kafkaPublisher, kafkaErr := kafka.NewPublisher(brokers, configs.KafkaNotificationTopic)
		if kafkaErr != nil {
			log.Fatalf("Failed to create kafka publisher: %v", kafkaErr)
		}
		defer kafkaPublisher.Close()
		if kafkaErr = kafkaPublisher.EnsureTopic(ctx); kafkaErr != nil {
			log.Fatalf("Failed to create notification topic: %v", kafkaErr)
		}
		publisher = kafkaPublisher
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, publisher, metrics.New())
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err = app.BootstrapAdmin(ctx, logger); err != nil {
		log.Fatalf("Failed to bootstrap administrator: %v", err)
	}

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, app, configs.HTTPPort, logger); err != nil {
		log.Fatalf("Web server failed: %v", err)
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	swagger, err := api.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi contract: %w", err)
	}
	if err = api.RegisterSwaggerDoc(swagger); err != nil {
		return err
	}

	m := app.Metrics()
	e, err := fastfeethttp.NewRouter(app.CreateHTTPServer(), fastfeethttp.RouterConfig{
		Logger:         logger,
		Swagger:        swagger,
		Authenticator:  app.CreateAuthenticator(),
		ObserveRequest: m.ObserveHTTPRequest,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
