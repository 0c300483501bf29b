package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/teamdesk/teamdesk/pkg/config"
	logger "github.com/teamdesk/teamdesk/pkg/log"
	"github.com/teamdesk/teamdesk/pkg/version"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was
	// built against. It's set via ldflags when building.
	CommitSHA = ""

	serverURL string

	rootCmd = &cobra.Command{
		Use:          "teamdesk",
		Short:        "A terminal dashboard for your team's task tracker",
		Long:         "Teamdesk is a terminal client for a team task tracker: projects, tasks, presence statuses and invitations.",
		SilenceUsage: true,
		// Flags are parsed after main has loaded the config, so the
		// override has to happen here, not there.
		PersistentPreRunE: applyServerFlag,
		RunE:              uiCmd.RunE,
	}
)

func applyServerFlag(cmd *cobra.Command, _ []string) error {
	if serverURL == "" {
		return nil
	}
	cfg := config.FromContext(cmd.Context())
	cfg.Server.URL = serverURL
	return cfg.Validate()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend server URL")
	rootCmd.AddCommand(
		uiCmd,
		loginCmd,
		logoutCmd,
		registerCmd,
		whoamiCmd,
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			Version = info.Main.Version
		} else {
			Version = "unknown (built from source)"
		}
	}
	rootCmd.Version = Version
	version.Version = Version
	version.CommitSHA = CommitSHA
}

func main() {
	ctx := context.Background()

	cfg := config.DefaultConfig()
	if !cfg.Exist() {
		// Write config to disk.
		if err := cfg.WriteConfig(); err != nil {
			log.Fatal("write default config", "err", err)
		}
		if err := cfg.ParseEnv(); err != nil {
			log.Fatal("parse environment", "err", err)
		}
	} else if err := cfg.Parse(); err != nil {
		log.Fatal("parse config", "err", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("validate config", "err", err)
	}

	ctx = config.WithContext(ctx, cfg)

	l, f, err := logger.NewLogger(cfg)
	if err != nil {
		log.Errorf("failed to create logger: %v", err)
	}
	if f != nil {
		defer f.Close() // nolint: errcheck
	}

	// Set global logger
	log.SetDefault(l)
	ctx = log.WithContext(ctx, l)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
