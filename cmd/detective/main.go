package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"example.com/interrogation/internal/cli"
	"example.com/interrogation/internal/config"
	"example.com/interrogation/internal/game"
	"example.com/interrogation/internal/gateway"
	"example.com/interrogation/internal/records"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	envFile  string
	log      = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "detective",
	Short: "Interrogate AI suspects, or be interrogated by an AI detective",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})
	},
	RunE: runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game",
	RunE:  runPlay,
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List saved games",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		store, err := records.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("open record store: %w", err)
		}
		defer store.Close()

		rs, err := store.List(ctx)
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		cli.RenderRecords(cmd.OutOrStdout(), rs)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", "info", "Set logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Optional dotenv file")
	rootCmd.AddCommand(playCmd, recordsCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	gen, err := gateway.New(ctx, cfg, log.WithField("component", "gateway"))
	if err != nil {
		return fmt.Errorf("model gateway: %w", err)
	}
	store, err := records.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}
	defer store.Close()

	builder := game.NewBuilder(gen, store, log, rand.New(rand.NewSource(time.Now().UnixNano()))).
		WithModel(cfg.Model).
		WithAnalysisRetries(cfg.AnalysisRetries)
	builder.EventManager().Subscribe(cli.NewRenderer(cmd.OutOrStdout()))
	session, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	ui, closeUI := cli.NewCLI(log)
	defer closeUI()
	return ui.Run(ctx, session)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
