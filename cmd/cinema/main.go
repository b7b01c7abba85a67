package main

import (
	"fmt"
	"os"
	"time"

	"isitcinema/internal/api"
	"isitcinema/internal/config"
	"isitcinema/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	apiURL     string
	timeout    time.Duration

	// Effective configuration, resolved in PersistentPreRunE
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cinema",
	Short: "Is it Cinema? - Letterboxd reviews, summarized and roasted",
	Long: `Is it Cinema? summarizes what Letterboxd thinks of a film and roasts
your Letterboxd taste.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		if err := logging.Initialize(cfg.Logging.Options()); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.Boot("cinema %s starting (api=%s)", cmd.CalledAs(), cfg.API.BaseURL)

		// Skip the CLI logger for interactive mode (it owns the terminal)
		if cmd == cmd.Root() {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (or set CINEMA_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (default from config)")

	rootCmd.AddCommand(movieCmd)
	rootCmd.AddCommand(roastCmd)
	rootCmd.AddCommand(tasteCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		c.API.BaseURL = apiURL
	}
	if timeout > 0 {
		c.API.Timeout = timeout.String()
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", resolvedConfigPath(), err)
	}
	return c, nil
}

func newClient(c *config.Config) *api.Client {
	return api.NewClient(c.API.BaseURL,
		api.WithTimeout(c.GetAPITimeout()),
		api.WithUserAgent(c.API.UserAgent),
	)
}
