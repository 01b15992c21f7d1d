package cmd

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "parcel_tracking/docs"
	"parcel_tracking/internal/config"
	"parcel_tracking/internal/email"
	"parcel_tracking/internal/handlers"
	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/queue"
	"parcel_tracking/internal/repository"
	"parcel_tracking/internal/repository/db"
	"parcel_tracking/internal/server"
	"parcel_tracking/internal/service"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the parcel tracking REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServe(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg *config.Config) error {
	log := logger.Get(cfg.Log.Level)

	// open DB
	conn, err := openDB(cfg.DB, log)
	if err != nil {
		log.Errorw("failed to init sqlite", "err", err)
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// notification pipeline
	sender, err := email.NewSender(cfg.Email, log)
	if err != nil {
		log.Errorw("failed to init email sender", "err", err)
		return err
	}
	q, err := queue.New(ctx, cfg.Queue, cfg.Redis)
	if err != nil {
		log.Errorw("failed to init notification queue", "backend", cfg.Queue.Backend, "err", err)
		return err
	}
	defer func() {
		if cerr := q.Close(); cerr != nil {
			log.Warnw("failed to close notification queue", "err", cerr)
		}
	}()
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		queue.NewWorker(q, sender, log).Run(ctx)
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		Admin:      cfg.Admin,
		StaleAfter: cfg.Watcher.StaleAfter,
		Queue:      q,
		Log:        log,
	})
	apiHandler := handlers.NewHandler(services, log)

	// start stale-parcel watcher (via composed service)
	go services.Watcher.Run(ctx, cfg.Watcher.Tick)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler.InitRoutes(), log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
	<-workerDone
	return nil
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	dbPath := cfg.Path
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "parcels.db")
		dbPath = "parcels.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler http.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("listening", "port", port)
		if err := srv.Run(port, handler); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdown(cancel, srv, log)
}

// shutdown drains the HTTP server, then stops background goroutines, so work
// enqueued by in-flight requests still reaches the notification worker.
func shutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	log.Infow("shutting down server...")

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}

	cancel()
}
