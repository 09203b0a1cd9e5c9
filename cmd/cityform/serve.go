package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwhite7112/cityform/internal/api"
	"github.com/mwhite7112/cityform/internal/db"
	"github.com/mwhite7112/cityform/internal/events"
	"github.com/mwhite7112/cityform/internal/form"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	engine, closeEngine := newEngine(nil, nil)
	defer closeEngine()

	submitter, closeSubmitter, err := newSubmitter()
	if err != nil {
		return err
	}
	defer closeSubmitter()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(engine, submitter),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("cityform listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newSubmitter stores enquiries in Postgres when DB_URL is set and publishes
// them when RABBITMQ_URL is set. Without a database enquiries are only logged.
func newSubmitter() (form.Submitter, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DB_URL not set, enquiries are logged and not stored")
		return form.LogSubmitter{}, func() {}, nil
	}

	sqlDB, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	closers := []func(){func() { sqlDB.Close() }}
	var publisher form.EnquiryPublisher
	if cfg.RabbitURL != "" {
		p, err := events.NewEnquiryPublisher(cfg.RabbitURL)
		if err != nil {
			log.Warn().Err(err).Msg("rabbitmq unavailable, enquiry.received events are not published")
		} else {
			publisher = p
			closers = append(closers, func() { _ = p.Close() })
		}
	}

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return form.NewStoreSubmitter(db.New(sqlDB), publisher), closeAll, nil
}

func openDB() (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DB_URL is required")
	}
	sqlDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return sqlDB, nil
}
