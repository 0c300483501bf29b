package main

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/cobra"

	"github.com/teamdesk/teamdesk/pkg/config"
)

func TestServerFlagOverridesConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()

	cmd := &cobra.Command{}
	cmd.SetContext(config.WithContext(context.Background(), cfg))

	serverURL = ""
	is.NoErr(applyServerFlag(cmd, nil))
	is.Equal(cfg.Server.URL, config.DefaultConfig().Server.URL)

	serverURL = "http://backend.example:9000/"
	t.Cleanup(func() { serverURL = "" })
	is.NoErr(applyServerFlag(cmd, nil))
	is.Equal(cfg.Server.URL, "http://backend.example:9000")
}
