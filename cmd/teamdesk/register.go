package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/session"
	"github.com/teamdesk/teamdesk/pkg/ui"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

var (
	registerToken string

	registerCmd = &cobra.Command{
		Use:   "register",
		Short: "Register with an invite token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			sess, err := session.Open(cfg)
			if err != nil {
				return err
			}

			client := api.NewClient(cfg, sess)
			c := common.NewCommon(ctx, client, sess, 0, 0)
			m := ui.NewWithInvite(c, registerToken)

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = p.Run()
			return err
		},
	}
)

func init() {
	registerCmd.Flags().StringVarP(&registerToken, "token", "t", "", "invite token")
	_ = registerCmd.MarkFlagRequired("token")
}
