// Package cmd implements the turk command-line tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexbotov/turk/internal/config"
	"github.com/alexbotov/turk/pkg/turk"
)

var (
	cfgPath string
	sandbox bool
	verbose bool
	retries int
)

var rootCmd = &cobra.Command{
	Use:   "turk",
	Short: "Requester tools for the Mechanical Turk query API",
}

// Execute runs the root command with signal-aware context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&sandbox, "sandbox", false, "use the sandbox endpoint")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 0, "transport-level retries (0 disables)")
}

// newLogger builds the process logger. Credentials never appear in log
// fields.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newClient builds a requester client from the resolved configuration. With
// --retries the transport is a retrying HTTP client; the requester core
// itself never retries.
func newClient(cfg *config.Config) *turk.Client {
	cc := cfg.ClientConfig()

	var client *turk.Client
	if retries > 0 {
		rc := retryablehttp.NewClient()
		rc.RetryMax = retries
		rc.Logger = nil
		client = turk.NewClientWithHTTPClient(cc, rc.StandardClient())
	} else {
		client = turk.NewClient(cc)
	}

	if sandbox {
		client = client.Sandbox()
	}
	return client
}

// loadConfig resolves configuration for a subcommand run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if cfg.AccessKeyID == "" || cfg.SecretKey == "" {
		return nil, errors.New("access key and secret key are required (TURK_ACCESS_KEY_ID / TURK_SECRET_KEY)")
	}
	return cfg, nil
}
