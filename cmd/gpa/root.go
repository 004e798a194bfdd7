package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/gpacalc/internal/app/cli"
	"github.com/yigit/gpacalc/internal/app/repositories"
	"github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/app/session"
	"github.com/yigit/gpacalc/internal/config"
	"github.com/yigit/gpacalc/internal/pkg/gpaclient"
	"github.com/yigit/gpacalc/internal/pkg/logger"
)

var (
	configPath string
	endpoint   string
	verbose    bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gpa",
	Short: "Keep a list of courses and calculate a credit-weighted GPA",
	Long: `gpa keeps an in-memory list of courses (name, credits, score) that can be added,
edited and deleted, and asks the GPA server to calculate the GPA of the list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if endpoint != "" {
			loaded.Client.Endpoint = endpoint
		}

		logCfg := logger.ConfigFor(loaded.Logging.Level, "text")
		if verbose {
			logCfg.Level = logger.DebugLevel
		} else if logCfg.Level == logger.InfoLevel || logCfg.Level == logger.DebugLevel {
			logCfg.Level = logger.WarnLevel
		}
		logger.Configure(logCfg)

		cfg = loaded
		logger.Debug().Str("endpoint", cfg.Client.Endpoint).Msg("Configuration loaded")
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err.Error()))
		os.Exit(1)
	}
}

// newController builds a fresh session against the configured endpoint
func newController() *session.Controller {
	client := gpaclient.NewClient(cfg.Client.Endpoint, cfg.ClientTimeout(), logger.Component("gpaclient"))
	repos := repositories.NewRepositories()
	store := services.NewCourseStore(repos.CourseRepository, logger.Component("store"))
	return session.NewController(store, client, logger.Component("session"))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "GPA calculation endpoint (overrides configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
