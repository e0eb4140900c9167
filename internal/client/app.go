package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-event-planner/internal/adapter"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/spf13/cobra"
)

// Environment variables read as flag defaults.
const (
	envServer = "PLANNER_SERVER"
	envToken  = "PLANNER_TOKEN"

	defaultServer  = "localhost:3000"
	defaultTimeout = 15 * time.Second
)

type App struct {
	out    io.Writer
	logger *logger.Logger

	server  string
	token   string
	timeout time.Duration
}

func NewApp(out io.Writer, logger *logger.Logger) *App {
	return &App{out: out, logger: logger}
}

// Run parses args (without the program name) and executes the matching
// command.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Event planner client",
		Long:          "Command-line client for the event planner API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.server, "server", getenv(envServer, defaultServer), "Server address (env "+envServer+")")
	flags.StringVar(&a.token, "token", os.Getenv(envToken), "Bearer token from 'login' (env "+envToken+")")
	flags.DurationVar(&a.timeout, "timeout", defaultTimeout, "Request timeout")

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.eventsCmd(),
		a.versionCmd(),
	)

	return root
}

// serverAdapter builds an adapter from the parsed persistent flags.
func (a *App) serverAdapter() (adapter.ServerAdapter, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(a.server, a.timeout, a.logger)
	if err != nil {
		return nil, err
	}
	if a.token != "" {
		serverAdapter.SetToken(a.token)
	}
	return serverAdapter, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverAdapter, err := a.serverAdapter()
			if err != nil {
				return err
			}

			version, err := serverAdapter.Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Server commit: %s\n", version.Commit)
			}
			return nil
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
