package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-babele/internal/converters"
	"github.com/KirkDiggler/rpg-babele/internal/handlers/babele/v1alpha1"
	"github.com/KirkDiggler/rpg-babele/internal/merge"
	"github.com/KirkDiggler/rpg-babele/internal/orchestrators/translation"
	"github.com/KirkDiggler/rpg-babele/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-babele/internal/redis"
	"github.com/KirkDiggler/rpg-babele/internal/repositories/translations"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the translation gRPC server with the merge converters registered.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", 0, "gRPC server port (env BABELE_GRPC_PORT)")
	serverCmd.Flags().StringSlice("redis", nil, "Redis endpoints (env BABELE_REDIS_ADDRS)")
	serverCmd.Flags().String("namespace", "", "flag namespace for translated descriptions (env BABELE_FLAG_NAMESPACE)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	overrideInt(cmd.Flags(), "port", &cfg.GRPCPort)
	overrideStrings(cmd.Flags(), "redis", &cfg.RedisAddrs)
	overrideString(cmd.Flags(), "namespace", &cfg.FlagNamespace)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		TranslationService: svc,
	})
	if err != nil {
		return fmt.Errorf("failed to create translation handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := registerServices(srv, handler)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildService wires the store, the converter registry and the orchestrator.
// A converter registration failure is logged and the server keeps booting.
func buildService(ctx context.Context, cfg *Config) (translation.Service, func(), error) {
	client, err := redis.Connect(ctx, cfg.RedisAddrs, nil, cfg.RedisTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	repo, err := translations.NewRedis(&translations.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create translation repository: %w", err)
	}

	merger, err := merge.New(&merge.Config{Namespace: cfg.FlagNamespace})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	registry := converters.NewRegistry()
	if err := converters.Register(registry, merger); err != nil {
		slog.Warn("Serving without merge converters", "error", err)
	}

	svc, err := translation.NewOrchestrator(&translation.Config{
		Converters:      registry,
		TranslationRepo: repo,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create translation orchestrator: %w", err)
	}

	return svc, cleanup, nil
}

// logFunc bridges middleware logging onto slog; the level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

// registerServices registers the translation service and health checks.
// Server reflection is not registered: the translation service has no
// compiled proto descriptor to serve.
func registerServices(srv *grpc.Server, handler v1alpha1.TranslationServiceServer) *health.Server {
	v1alpha1.RegisterTranslationServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return healthServer
}
