package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/config"
	"github.com/prideconnect/prideconnect/internal/errors"
	"github.com/prideconnect/prideconnect/internal/guard"
	"github.com/prideconnect/prideconnect/internal/log"
	"github.com/prideconnect/prideconnect/internal/route"
	"github.com/prideconnect/prideconnect/internal/session"
)

var (
	flagConfig  string
	flagAPIURL  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "prideconnect",
	Short: "Terminal client for the PrideConnect community platform",
	Long: `prideconnect is a terminal client for the PrideConnect community platform.

It connects LGBTQ+ people with disabilities to community forums, accessible
events, verified service providers, resources, and each other. Log in once
and the session persists across runs.

Start with 'prideconnect auth login', or 'prideconnect browse' for the
interactive interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/prideconnect/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend URL (overrides config and PRIDECONNECT_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func configureLogging() {
	cfg := log.DefaultConfig()
	if fileCfg, err := loadConfig(); err == nil {
		if fileCfg.Log.Level != "" {
			cfg.Level = log.ParseLevel(fileCfg.Log.Level)
		}
		if fileCfg.Log.Format != "" {
			cfg.Format = log.ParseFormat(fileCfg.Log.Format)
		}
	}
	if flagVerbose {
		cfg = log.DevelopmentConfig()
	}
	log.SetDefaultLogger(log.New(cfg))
}

// loadConfig reads the configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

// newClient builds an API client from flags, environment, and config.
func newClient() (*api.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var baseURL string
	if flagAPIURL != "" {
		baseURL, err = api.NormalizeBaseURL(flagAPIURL, cfg.Secure)
	} else {
		baseURL, err = cfg.BaseURL()
	}
	if err != nil {
		return nil, err
	}

	return api.NewClient(baseURL), nil
}

// newSession builds the session store over the persisted credential and
// settles it. Every command that talks to the backend goes through here so
// the token, the client header, and the persisted entry stay in lockstep.
func newSession(ctx context.Context) (*session.Store, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}

	authPath, err := session.DefaultAuthPath()
	if err != nil {
		return nil, err
	}

	store := session.New(client, session.NewFileStorage(authPath))
	store.Initialize(ctx)
	return store, nil
}

// requireRoute enforces the navigation guard for the screen a command
// corresponds to, so the CLI and the interactive interface agree on who may
// do what.
func requireRoute(store *session.Store, name string) error {
	r, ok := route.Lookup(name)
	if !ok {
		return errors.New(errors.ErrCodeValidation, "unknown screen: "+name)
	}

	res := guard.Evaluate(r, store.State())
	switch res.Decision {
	case guard.DecisionAllowed:
		return nil
	case guard.DecisionDenied:
		if res.RedirectTo == route.LoginPath {
			return errors.New(errors.ErrCodeTokenMissing, "not logged in").
				WithSuggestion("Run 'prideconnect auth login' to authenticate")
		}
		return errors.New(errors.ErrCodeValidation, "already logged in").
			WithSuggestion("Run 'prideconnect auth logout' first")
	default:
		return errors.New(errors.ErrCodeSessionConflict, "session still resolving")
	}
}
