package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := config.FromContext(ctx)

		sess, err := session.Open(cfg)
		if err != nil {
			return err
		}
		if !sess.LoggedIn() {
			fmt.Fprintln(cmd.OutOrStdout(), "Нет активной сессии")
			return nil
		}

		// Best effort. The local session is cleared even when the server
		// is unreachable.
		client := api.NewClient(cfg, sess)
		if err := client.Logout(ctx); err != nil {
			log.FromContext(ctx).Warn("server logout failed", "err", err)
		}
		if err := sess.Clear(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Вы успешно вышли из системы")
		return nil
	},
}
