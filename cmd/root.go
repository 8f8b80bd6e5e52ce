package cmd

import (
	"fmt"
	"os"

	"github.com/matheuskafuri/headlines/internal/config"
	"github.com/matheuskafuri/headlines/internal/logging"
	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/matheuskafuri/headlines/internal/update"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "headlines",
	Short: "Technology headlines dashboard",
	Long:  "headlines fetches the current US technology top headlines from NewsAPI and shows them as searchable cards.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `log file path ("-" for stderr)`)

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check GitHub for a newer release")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

var (
	flagCheck  bool
	releaseURL = update.ReleasesURL
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "headlines %s (commit: %s, built: %s)\n", version, commit, date)
		if !flagCheck {
			return
		}
		res, err := update.Check(cmd.Context(), releaseURL, version)
		switch {
		case err != nil:
			fmt.Fprintf(cmd.ErrOrStderr(), "[warn] %v\n", err)
		case res != nil:
			fmt.Fprintf(cmd.OutOrStdout(), "A newer version is available: %s\n", res.LatestVersion)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "You are on the latest version.")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// env is what every command needs before it can fetch.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	client *newsapi.Client
}

func setup() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logPath := flagLogFile
	if logPath == "" {
		logPath = config.LogPath()
	}
	logger, err := logging.New(logPath, cfg.Level())
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	if cfg.Key() == "" {
		logger.Warn("no NewsAPI key configured", zap.String("env", config.APIKeyEnv))
	}

	client := newsapi.NewClient(newsapi.Options{
		BaseURL:  cfg.BaseURL,
		APIKey:   cfg.Key(),
		Country:  cfg.Country,
		Category: cfg.Category,
		Timeout:  cfg.TimeoutDuration(),
	})

	return &env{cfg: cfg, logger: logger, client: client}, nil
}
