package cmd

import (
	"os"

	"parcel_tracking/internal/config"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "parceltrack",
	Short: "Parcel tracking service",
	Long: `parceltrack runs the parcel tracking REST API and its web console.

Available commands:
  serve      Start the REST API, notification worker and stale-parcel watcher
  console    Start the server-rendered web console
  track      Print a parcel and its history from a running API
  version    Print the version number

Use "parceltrack [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default configs/config.yml)")
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
