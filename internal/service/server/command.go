package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	api "github.com/oshokin/panic-button/internal/api/grpc/status"
	"github.com/oshokin/panic-button/internal/api/http/ops"
	"github.com/oshokin/panic-button/internal/config"
	"github.com/oshokin/panic-button/internal/logger"
	pb "github.com/oshokin/panic-button/internal/pb/v1"
	"github.com/oshokin/panic-button/internal/service/dispatch"
	"github.com/oshokin/panic-button/internal/version"
)

// Options controls the panic-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// Sender replaces the messaging channel chosen from the settings when set.
	Sender dispatch.Sender
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC and HTTP servers and blocks until the context is canceled
// or one of them stops.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "panic-server")

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	} else {
		logger.WarnKV(ctx, "Unknown log level, keeping the default", "log_level", settings.LogLevel)
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// Connect stores, sessions and the messaging channel.
	deps, err := openDependencies(ctx, settings, opts.Sender)
	if err != nil {
		return fmt.Errorf("open dependencies: %w", err)
	}

	defer deps.Close()

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		api.LoggingInterceptor(),
		api.AuthInterceptor(deps.sessions),
	))
	pb.RegisterStatusServiceServer(grpcServer, api.NewServer(deps.service))

	logger.InfoKV(ctx, "Panic server listening", "listen_address", listenAddress, "version", version.Short())

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}

		return nil
	})

	var httpServer *http.Server

	if settings.HTTPAddress != "" {
		httpServer = &http.Server{
			Addr:              settings.HTTPAddress,
			Handler:           ops.NewRouter(deps.metrics.Handler(), deps.healthChecks()...),
			ReadHeaderTimeout: settings.Timeout,
		}

		logger.InfoKV(ctx, "Ops HTTP listening", "http_address", settings.HTTPAddress)

		group.Go(func() error {
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve HTTP: %w", err)
			}

			return nil
		})
	}

	// Stop both servers once the context is canceled or one of them failed.
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info(ctx, "Shutting down servers")

		grpcServer.GracefulStop()

		if httpServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settings.Timeout)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorKV(ctx, "HTTP shutdown failed", "error", err)
			}
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	logger.Info(ctx, "Servers stopped")

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Bind on all interfaces.
	return ":" + port, nil
}
