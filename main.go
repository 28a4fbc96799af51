package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/ballot-admin/cliparse"
	"github.com/danielhkuo/ballot-admin/db"
	"github.com/danielhkuo/ballot-admin/metrics"
	"github.com/danielhkuo/ballot-admin/middleware"
	"github.com/danielhkuo/ballot-admin/router"
	"github.com/danielhkuo/ballot-admin/seed"
	"github.com/danielhkuo/ballot-admin/session"
	"github.com/danielhkuo/ballot-admin/store"
	"github.com/danielhkuo/ballot-admin/wallet"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))

	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		slog.Error("seed data failed to load", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := metrics.New()

	var elections *store.ElectionStore
	var candidates *store.CandidateStore
	if cfg.Persistent() {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)

		elections, candidates, err = openStores(ctx, dbConn, cfg.DatabaseType, data)
		if err != nil {
			slog.Error("loading records failed", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("No database configured, records are kept in memory")
		elections = store.NewElectionStore(data.Elections, nil)
		candidates = store.NewCandidateStore(data.Candidates, nil)
	}
	rec.Records(metrics.Elections, elections.Len())
	rec.Records(metrics.Candidates, candidates.Len())

	// Assigning a nil *RPCProvider to the interface would make it non-nil
	var provider wallet.Provider
	if cfg.WalletRPCURL != "" {
		provider = wallet.NewRPCProvider(cfg.WalletRPCURL, nil)
	}
	connector := wallet.NewConnector(provider, cfg.WalletChainID)
	if err := connector.Ready(); err != nil {
		slog.Warn("Wallet connect disabled; set WALLET_RPC_URL to enable it", "error", err)
	}

	sessions := session.NewRegistry()
	go sessions.Run(ctx, time.Minute, cfg.SessionTTL, rec.Sessions)

	// Create router
	mux := router.NewRouter(router.Deps{
		Elections:  elections,
		Candidates: candidates,
		Sessions:   sessions,
		Connector:  connector,
		Metrics:    rec,
	}, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "chain_id", connector.ExpectedChainID())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStores loads records from the database, seeding empty tables first
func openStores(ctx context.Context, conn *sql.DB, dbType string, data seed.Data) (*store.ElectionStore, *store.CandidateStore, error) {
	repo := db.NewRepository(conn, dbType)

	elections, err := repo.LoadElections(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(elections) == 0 && len(data.Elections) > 0 {
		if err := repo.SaveElections(ctx, data.Elections); err != nil {
			return nil, nil, err
		}
		elections = data.Elections
		slog.Info("elections seeded", "count", len(elections))
	}

	candidates, err := repo.LoadCandidates(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(candidates) == 0 && len(data.Candidates) > 0 {
		if err := repo.SaveCandidates(ctx, data.Candidates); err != nil {
			return nil, nil, err
		}
		candidates = data.Candidates
		slog.Info("candidates seeded", "count", len(candidates))
	}

	return store.NewElectionStore(elections, repo), store.NewCandidateStore(candidates, repo), nil
}
