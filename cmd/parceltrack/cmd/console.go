package cmd

import (
	"context"

	"parcel_tracking/internal/client"
	"parcel_tracking/internal/config"
	"parcel_tracking/internal/console"
	"parcel_tracking/internal/logger"
	"parcel_tracking/internal/server"

	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the web console for customers and administrators",
	Long: `Serves the server-rendered console. Every page talks to the REST API
configured under console.api_url; the console keeps no data of its own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runConsole(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(ctx context.Context, cfg *config.Config) error {
	log := logger.Get(cfg.Log.Level)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	api := client.New(cfg.Console.APIURL, cfg.Console.Timeout)
	if err := api.Health(ctx); err != nil {
		// The API may come up later; pages report failures per request.
		log.Warnw("api not reachable", "url", cfg.Console.APIURL, "err", err)
	}

	store := console.NewCookieStore(cfg.Console.SessionSecret)
	h := console.NewHandler(api, store, log)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Console.Port, h.InitRoutes(), log)

	waitForShutdown(cancel, srv, log)
	return nil
}
