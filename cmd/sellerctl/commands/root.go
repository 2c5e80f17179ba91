package commands

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/marketdesk/sellerctl/api"
	"github.com/marketdesk/sellerctl/console"
	"github.com/marketdesk/sellerctl/internal/config"
	"github.com/marketdesk/sellerctl/session"
)

// appContext holds the wired-up console shared by all commands.
type appContext struct {
	sessions *session.Controller
	guard    *console.Guard
	screens  *console.Screens
	logger   zerolog.Logger
}

var appCtx *appContext

// Execute wires the console together and runs the command tree. Everything a
// screen needs flows from here: store -> controller -> guard -> client ->
// screens. The guard doubles as the client's navigator, so a rejected token
// anywhere lands the seller back on the login route.
func Execute(cfg config.Config) error {
	root := &cobra.Command{
		Use:           "sellerctl",
		Short:         "Seller administration console",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := buildAppContext(cfg)
			if err != nil {
				return err
			}
			appCtx = ctx
			return nil
		},
	}

	root.AddCommand(
		loginCmd(), registerCmd(), logoutCmd(),
		dashboardCmd(), profileCmd(),
		productsCmd(), brandsCmd(), ordersCmd(), returnsCmd(), complaintsCmd(),
	)
	return root.Execute()
}

func buildAppContext(cfg config.Config) (*appContext, error) {
	logger := newLogger(cfg)

	store, err := session.NewFileStore(cfg.GetDataFolder())
	if err != nil {
		return nil, err
	}

	sessions, err := session.NewController(store, session.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := sessions.Initialize(); err != nil {
		return nil, err
	}

	guard, err := console.NewGuard(sessions, console.WithGuardLogger(logger))
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(cfg.GetBaseURL(), sessions,
		api.WithNavigator(guard),
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: httpTimeout(cfg)}),
	)
	if err != nil {
		return nil, err
	}

	screens, err := console.NewScreens(client, sessions)
	if err != nil {
		return nil, err
	}
	guard.SetLoginScreen(screens.Login)

	return &appContext{
		sessions: sessions,
		guard:    guard,
		screens:  screens,
		logger:   logger,
	}, nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if cfg.GetEnv() == "DEV" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func httpTimeout(cfg config.Config) time.Duration {
	timeout, err := time.ParseDuration(cfg.GetHTTPTimeout())
	if err != nil {
		return 30 * time.Second
	}
	return timeout
}
