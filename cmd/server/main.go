// Command fd-server starts the flashdeck gRPC server.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/flashdeck/gen/go/flashdeck/v1"
	"github.com/and161185/flashdeck/internal/config"
	"github.com/and161185/flashdeck/internal/generation/gemini"
	"github.com/and161185/flashdeck/internal/limiter"
	"github.com/and161185/flashdeck/internal/migrate"
	"github.com/and161185/flashdeck/internal/repository/postgres"
	grpcserver "github.com/and161185/flashdeck/internal/server/grpc"
	"github.com/and161185/flashdeck/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the Decks API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		boot, _ := zap.NewProduction()
		boot.Fatal("load config", zap.Error(err))
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Log.ZapLevel())
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Server.Addr),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	applied, err := migrate.Up(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}
	logger.Info("migrations applied", zap.Int("count", applied))

	db, pool, err := postgres.New(ctx, cfg.Database.DSN, postgres.Options{
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		StatementTimeout: cfg.Database.StatementTimeout,
	})
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	folders := postgres.NewFolderRepo(db)
	decks := postgres.NewDeckRepo(db)
	prompts := postgres.NewPromptRepo(db)

	gate, err := limiter.New(limiter.Backend(cfg.Quota.Backend), pool,
		limiter.Policy{Limit: cfg.Quota.Limit, Window: cfg.Quota.Window}, logger.Named("gate"))
	if err != nil {
		logger.Fatal("quota gate", zap.Error(err))
	}
	logger.Info("quota gate", zap.String("backend", cfg.Quota.Backend))

	temp, _ := cfg.LLM.Temperature.Float() // checked by Validate
	provider, err := gemini.New(ctx, gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: temp,
	}, logger.Named("gemini"))
	if err != nil {
		logger.Fatal("gemini client", zap.Error(err))
	}

	// Services
	ws := service.NewWorkspaceService(folders, decks, service.Limits{
		Folders:        cfg.Workspace.MaxFolders,
		DecksPerFolder: cfg.Workspace.MaxDecksPerFolder,
	})
	gen := service.NewGenerationService(gate, prompts, provider, logger.Named("generation"))

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.AuthUnary(grpcserver.NewAuthenticator([]byte(cfg.Auth.JWTSecret)), grpcserver.ServicePrefix),
			grpcserver.LoggingUnary(logger),
		),
		// documents up to 4 MiB plus JSON base64 overhead
		grpc.MaxRecvMsgSize(8 << 20),
	}
	if cfg.Server.TLS() {
		creds, err := credentials.NewServerTLSFromFile(cfg.Server.TLSCert, cfg.Server.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("TLS disabled, serving plaintext")
	}
	s := grpc.NewServer(opts...)

	pb.RegisterDecksServer(s, grpcserver.New(ws, gen))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Server.Reflection {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr), zap.Bool("tls", cfg.Server.TLS()))
		errCh <- s.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(cfg.Server.ShutdownTimeout):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
