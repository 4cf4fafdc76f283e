package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"starfolio/field"
	"starfolio/game"
	"starfolio/term"
)

var (
	configPath string
	verbose    bool
	logger     *zap.Logger
)

// rootCmd opens the starfield in a desktop window
var rootCmd = &cobra.Command{
	Use:           "starfolio",
	Short:         "Animated starfield background with shooting stars and comets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runWindow,
}

// termCmd draws the starfield in the current terminal
var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Draw the starfield in the terminal",
	RunE:  runTerm,
}

func loadConfig() (game.Config, error) {
	if configPath == "" {
		return game.DefaultConfig(), nil
	}
	return game.LoadConfig(configPath)
}

func runWindow(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	g, err := game.NewGame(config, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TPS)

	logger.Info("Opening window",
		zap.Int("width", config.ScreenWidth),
		zap.Int("height", config.ScreenHeight))
	return ebiten.RunGame(g)
}

func runTerm(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := field.NewAnimator(
		field.WithLogger(logger.Named("field")),
		field.WithPeriods(config.ShootingStarPeriod, config.CometPeriod),
	)
	return term.Run(ctx, a, config.FrameInterval, logger.Named("term"))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.AddCommand(termCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if logger != nil {
			logger.Error("starfolio failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
