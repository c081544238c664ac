package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chandrabosep/flow-schedule-transaction/pkg/config"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/ethereum"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/ledger"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/ledgerdb"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/pgutil"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/relay"
	"github.com/chandrabosep/flow-schedule-transaction/pkg/relaydb"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Schedule Vault Relayer")

	// Initialize database
	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	relayStore := relaydb.NewStore(db)

	ctx := context.Background()

	// Initialize the destination ledger, backed by the same database
	paymentLedger, err := ledger.New(ctx, ledgerdb.NewStore(db), logger,
		ledger.WithBridgeSender(cfg.Ledger.BridgeSender))
	if err != nil {
		logger.Fatal("Failed to initialize payment ledger", zap.Error(err))
	}

	// Initialize Ethereum client
	ethClient, err := ethereum.NewClient(&cfg.Ethereum, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Ethereum client", zap.Error(err))
	}
	defer ethClient.Close()

	source := relay.NewEthereumSource(ethClient,
		fmt.Sprintf("evm-%d", cfg.Ethereum.ChainID),
		cfg.Ethereum.VaultContract,
		cfg.Ethereum.TokenDecimals,
		logger)

	// Start relay engine first so we can reference it in HTTP handlers
	engine := relay.NewEngine(cfg, source, paymentLedger, source, relayStore, logger)
	if err := engine.Start(ctx); err != nil {
		logger.Fatal("Failed to start relay engine", zap.Error(err))
	}
	defer engine.Stop()

	// Setup HTTP server for API and metrics
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check endpoint (liveness)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Readiness endpoint - returns 503 until the engine is running
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if !engine.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	// Metrics endpoint
	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.Int("port", cfg.Monitoring.MetricsPort))
	}

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/submissions", handleListSubmissions(relayStore, logger))
		r.Get("/submissions/failed", handleFailedSubmissions(relayStore, logger))
		r.Get("/status", handleGetStatus(logger))
	})

	// Start HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("address", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received, gracefully shutting down...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Relayer stopped")
}

func handleListSubmissions(store *relaydb.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := store.ListSubmissions(r.Context(), 100) // Default limit
		if err != nil {
			logger.Error("Failed to list submissions", zap.Error(err))
			http.Error(w, "Failed to list submissions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]interface{}{"submissions": submissions}); err != nil {
			logger.Error("Failed to encode response", zap.Error(err))
		}
	}
}

func handleFailedSubmissions(store *relaydb.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := store.GetFailedSubmissions(r.Context(), 100)
		if err != nil {
			logger.Error("Failed to list failed submissions", zap.Error(err))
			http.Error(w, "Failed to list failed submissions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]interface{}{"submissions": submissions}); err != nil {
			logger.Error("Failed to encode response", zap.Error(err))
		}
	}
}

func handleGetStatus(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]interface{}{"status": "running"}); err != nil {
			logger.Error("Failed to encode response", zap.Error(err))
		}
	}
}
