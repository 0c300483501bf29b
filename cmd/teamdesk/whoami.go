package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := config.FromContext(ctx)

		sess, err := session.Open(cfg)
		if err != nil {
			return err
		}
		if !sess.LoggedIn() {
			fmt.Fprintln(cmd.OutOrStdout(), "Требуется авторизация")
			return nil
		}

		client := api.NewClient(cfg, sess)
		profile, err := client.Profile(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s <%s>\n", profile.Username, profile.Email)
		fmt.Fprintf(out, "Организация: %s\n", profile.OrganizationName)
		fmt.Fprintf(out, "Статус: %s\n", profile.Status.Label())
		return nil
	},
}
