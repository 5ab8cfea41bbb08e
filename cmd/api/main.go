package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GoSim-25-26J-441/supplynet-backend/config"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/auth"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/metrics"
)

const serviceName = "supplynet-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store (%s): %v", cfg.Store.Driver, err)
	}
	defer closeStore()

	var pool *pgxpool.Pool
	if cfg.Store.Driver == config.StorePostgres && cfg.Database.DSN != "" {
		pool, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Printf("Warning: health pool unavailable: %v", err)
		} else {
			defer pool.Close()
		}
	}

	var authClient *fbauth.Client
	if cfg.Firebase.Enabled() {
		authClient, err = auth.InitializeFirebase(ctx, &cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	} else {
		log.Println("Warning: FIREBASE_CREDENTIALS_PATH not set, trusting X-User-Id (development only)")
	}

	m := metrics.DefaultRegistry()
	sessions := bootstrap.NewSessions(cfg, store, m)
	if err := sessions.Start(cfg.Session.SweepSpec); err != nil {
		log.Fatalf("session sweeper: %v", err)
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Store:          store,
		DB:             pool,
		Sessions:       sessions,
		Metrics:        m,
		AuthClient:     authClient,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("%s %s listening on :%s (store=%s)", serviceName, cfg.App.Version, cfg.Server.Port, cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	// pending autosaves are flushed before the store closes
	if err := sessions.Shutdown(shutdownCtx); err != nil {
		log.Printf("session shutdown: %v", err)
	}
}
