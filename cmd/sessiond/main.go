package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mysession/backend"
	"mysession/handlers"
	"mysession/helpers"
	"mysession/interfaces"
	"mysession/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	bootLogger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	bootLogger = log.WithPrefix(bootLogger, "ts", log.DefaultTimestampUTC)

	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		level.Warn(bootLogger).Log("msg", "Error loading .env file", "err", err)
	}

	config, err := LoadConfig()
	if err != nil {
		level.Error(bootLogger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}

	logger, err := helpers.NewLogger(os.Stderr, config.Backend.LogLevel)
	if err != nil {
		level.Error(bootLogger).Log("msg", "Failed to create logger", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "Starting mysession service")
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"store_backend", config.Backend.Store,
		"conflict_policy", config.Backend.Policy,
		"session_key_length", config.Backend.KeyLength,
		"store_timeout", config.Backend.StoreTimeout,
	)

	var stores *backend.Stores
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		stores, err = backend.Open(ctx, config.Backend, logger)
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to open store backend", "err", err)
			os.Exit(1)
		}
		defer stores.Close()
	}

	if config.Backend.SeedPath != "" {
		users, err := backend.LoadSeed(config.Backend.SeedPath)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load seed file", "err", err)
			os.Exit(1)
		}
		if err := backend.Seed(context.Background(), stores.Users, users); err != nil {
			level.Error(logger).Log("msg", "Failed to seed users", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Users seeded", "count", len(users), "path", config.Backend.SeedPath)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics(registry)

	manager := backend.NewSessionManager(stores, config.Backend, metrics, logger)

	e, err := newHTTPServer(manager, registry, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create HTTP server", "err", err)
		os.Exit(1)
	}
	grpcServer := newGRPCServer(manager, logger)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
	if err != nil {
		level.Error(logger).Log("msg", "Failed to listen", "err", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "gRPC server error", "err", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during HTTP server shutdown", "err", err)
	}
	grpcServer.GracefulStop()

	level.Info(logger).Log("msg", "Server stopped")
}

// newHTTPServer builds the echo server: error handler, request id and OpenAPI validation
// middleware, the session routes and /metrics.
func newHTTPServer(manager interfaces.SessionManager, registry *prometheus.Registry, logger log.Logger) (*echo.Echo, error) {
	doc, err := handlers.LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := handlers.OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	e.Use(handlers.RequestID(logger), validator)
	handlers.RegisterHandlers(e, handlers.NewHTTPServer(manager, logger))
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return e, nil
}

// newGRPCServer builds the gRPC server with the SessionAPI, health and reflection services.
func newGRPCServer(manager interfaces.SessionManager, logger log.Logger) *grpc.Server {
	errorCodeOption := grpc.ChainUnaryInterceptor(service.SessionErrorToGRPCInterceptor(logger))
	grpcServer := grpc.NewServer(errorCodeOption)
	handlers.RegisterSessionAPIServer(grpcServer, handlers.NewGrpcServer(manager, logger))

	// Register health check service
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(handlers.SessionAPIServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)
	return grpcServer
}
