package main

import (
	"fmt"
	"os"

	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/platform/config"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "jobly",
	Short: "Jobly - job board API",
	Long: `Jobly is a REST API for companies, the jobs they post and the users
who apply to them. Configuration is read from the environment and an
optional .env file.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig reads the environment and applies global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Server.Debug = true
	}
	log.SetDebug(cfg.Server.Debug)
	log.InfoStruct(cfg.Redacted())
	return cfg, nil
}
