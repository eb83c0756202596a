package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeonforge-api/internal/catalog"
	"github.com/dungeonforge/dungeonforge-api/internal/config"
	"github.com/dungeonforge/dungeonforge-api/internal/handlers/api/v1alpha1"
	"github.com/dungeonforge/dungeonforge-api/internal/logger"
	"github.com/dungeonforge/dungeonforge-api/internal/orchestrators/dungeon"
	"github.com/dungeonforge/dungeonforge-api/internal/orchestrators/npc"
	"github.com/dungeonforge/dungeonforge-api/internal/pkg/clock"
	redisclient "github.com/dungeonforge/dungeonforge-api/internal/redis"
	npcstate "github.com/dungeonforge/dungeonforge-api/internal/repositories/npc_state"
)

var (
	configPath string
	httpPort   int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the DungeonForge API server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "config.yaml", "path to the server config file")
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpPort != 0 {
		cfg.HTTP.Port = httpPort
	}

	if err := logger.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	redisOpts := &redisclient.Options{
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		UseTLS:       cfg.Redis.UseTLS,
	}
	var redisClient redisclient.Client
	if len(cfg.Redis.ClusterEndpoints) > 0 {
		redisClient, err = redisclient.NewClusterClient(cfg.Redis.ClusterEndpoints, redisOpts)
	} else {
		redisClient, err = redisclient.NewClient(cfg.Redis.Endpoint, redisOpts)
	}
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}()

	npcRepo, err := npcstate.NewRedisRepository(&npcstate.Config{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create NPC state repository: %w", err)
	}

	dungeonService, err := dungeon.NewOrchestrator(&dungeon.Config{
		Catalog: catalog.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create dungeon orchestrator: %w", err)
	}

	npcService, err := npc.NewOrchestrator(&npc.Config{
		Repository: npcRepo,
		StateTTL:   cfg.NPC.StateTTL(),
	})
	if err != nil {
		return fmt.Errorf("failed to create NPC orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		DungeonService: dungeonService,
		NPCService:     npcService,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSeconds) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		slog.Info("Server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
