package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerbaras/thrones/pkg/app"
	"github.com/kerbaras/thrones/pkg/config"
	"github.com/kerbaras/thrones/pkg/logging"
	"github.com/kerbaras/thrones/pkg/services"
	"github.com/kerbaras/thrones/pkg/sources"
	"github.com/kerbaras/thrones/pkg/utils"
	"github.com/spf13/cobra"
)

// env is built by the persistent pre-run hook and shared by every command.
type env struct {
	cfg        *config.Config
	logger     *slog.Logger
	logCloser  io.Closer
	controller *services.CharacterController
}

var current env

var rootCmd = &cobra.Command{
	Use:   "thrones",
	Short: "Browse Game of Thrones characters from your terminal",
	Long:  "Fetch the character list and filter it by name in a full-screen TUI or from the CLI",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// the TUI owns the terminal, everything else may log to stderr
		var fallback io.Writer = os.Stderr
		if cmd == cmd.Root() {
			fallback = io.Discard
		}
		return setup(cmd, fallback)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		a := app.NewApp(current.controller, current.logger)
		return a.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.thrones/config.yaml)")
	rootCmd.PersistentFlags().String("token", "", "API bearer token (overrides THRONES_API_TOKEN)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.SilenceUsage = true
}

func setup(cmd *cobra.Command, fallback io.Writer) error {
	path, _ := cmd.Flags().GetString("config")

	overrides := map[string]any{}
	for flag, key := range map[string]string{
		"token":     "api.token",
		"base-url":  "api.base_url",
		"log-level": "log.level",
	} {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			overrides[key] = v
		}
	}

	cfg, err := config.Load(path, overrides)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer := logging.New(cfg.Log, fallback)
	logger.Debug("configuration loaded", slog.Any("config", cfg), slog.String("command", cmd.Name()))

	api := utils.NewAPI(cfg.API.BaseURL,
		utils.WithBearerToken(cfg.API.Token),
		utils.WithTimeout(cfg.API.Timeout),
		utils.WithLogger(logger),
	)

	current = env{
		cfg:        cfg,
		logger:     logger,
		logCloser:  closer,
		controller: services.NewCharacterController(sources.NewThronesAPI(api), logger),
	}
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}

// run executes the command line and releases the log file afterwards.
// Cobra skips post-run hooks when a command fails, so the close lives here.
func run(ctx context.Context, args []string) error {
	defer closeLog()

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func closeLog() {
	if current.logCloser != nil {
		current.logCloser.Close()
		current.logCloser = nil
	}
}
