package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexbotov/turk/internal/audit"
	"github.com/alexbotov/turk/internal/notify"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Run the notification receiver",
	Long: `Runs an HTTP endpoint that accepts REST-transport notifications from
the task service, verifies their signatures, and relays accepted events to
WebSocket subscribers on /ws. Point a HIT type at it with
SetHITTypeNotification.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx := cmd.Context()

		var auditSvc *audit.Service
		if cfg.Database.DSN != "" {
			db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("failed to open audit database: %w", err)
			}
			defer db.Close()
			auditSvc = audit.New(db)
			if err := auditSvc.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("failed to create audit schema: %w", err)
			}
		}

		hub := notify.NewHub(logger)
		receiver := notify.NewReceiver(
			cfg.SecretKey,
			time.Duration(cfg.Listen.MaxSkewSecs)*time.Second,
			hub, auditSvc, logger,
		)

		server := &http.Server{
			Addr:         cfg.Listen.Addr,
			Handler:      receiver.Router(),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		}

		logger.Info("Notification receiver listening", zap.String("addr", cfg.Listen.Addr))

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			hub.Run(ctx.Done())
			return nil
		})
		g.Go(func() error {
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
