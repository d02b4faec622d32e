package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"eventadmin/config"
	"eventadmin/internal/adapters/api"
	"eventadmin/internal/adapters/tokenstore"
	"eventadmin/internal/services"
)

var apiURLFlag string

var rootCmd = &cobra.Command{
	Use:   "eventadmin",
	Short: "Administer events on the platform",
	Long: `eventadmin manages conference-style event listings: log in, browse
and search the event catalog, and create or edit events including their
poster upload.

Configuration comes from the environment (EVENTADMIN_API_URL,
EVENTADMIN_STATE_DIR, EVENTADMIN_HTTP_TIMEOUT), an optional
~/.eventadmin.yaml file, or the --api-url flag.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app wires the session, gateway, and collection once per invocation and
// hands them to commands by reference. There are no package-level
// singletons holding auth state.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *tokenstore.Store
	gateway *api.Client
	session *services.Session
	events  *services.Collection
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURLFlag != "" {
		cfg.APIURL = apiURLFlag
	}
	logger := config.NewLogger()
	store := tokenstore.New(cfg.StateDir)
	gateway := api.New(cfg.APIURL, store, cfg.HTTPTimeout, logger)
	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		gateway: gateway,
		session: services.NewSession(gateway, store, logger),
		events:  services.NewCollection(gateway, logger),
	}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "backend origin (overrides config)")
}
