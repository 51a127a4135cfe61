// Command newsdesk is the admin CLI for the newsdesk publishing backend:
// staff log in, then create, list, edit, and delete news articles, blog
// posts, breaking-news ticker entries, and podcasts.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/newsdesk-cms/newsdesk/internal/client"
	"github.com/newsdesk-cms/newsdesk/internal/config"
	"github.com/newsdesk-cms/newsdesk/internal/logger"
	"github.com/newsdesk-cms/newsdesk/internal/session"
	"github.com/newsdesk-cms/newsdesk/internal/version"
)

// app carries the shared state built once before any subcommand runs.
type app struct {
	cfg      *config.Config
	logger   *zerolog.Logger
	sessions *session.BoltStore
	client   *client.Client
	jsonOut  bool
}

func main() {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "newsdesk",
		Short:         "Admin CLI for the newsdesk publishing backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.sessions != nil {
				_ = a.sessions.Close()
			}
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	cmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "emit raw JSON instead of text")

	cmd.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.registerCmd(),
		a.passwordCmd(),
		a.blogCmd(),
		a.breakingCmd(),
		a.podcastCmd(),
		a.newsCmd(),
		a.privacyCmd(),
	)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup() error {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	sessions, err := session.NewBoltStore(cfg.SessionFile)
	if err != nil {
		return err
	}
	a.sessions = sessions

	opts := []client.Option{
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(a.logger),
	}
	if cfg.AuthPreflight {
		opts = append(opts, client.WithAuthPreflight())
	}
	a.client = client.New(cfg.APIBaseURL, sessions, opts...)

	return nil
}

// print renders v as indented JSON when --json is set, otherwise falls back
// to the supplied text renderer.
func (a *app) print(v any, text func()) error {
	if !a.jsonOut {
		text()
		return nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
