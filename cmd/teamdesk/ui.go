package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/session"
	"github.com/teamdesk/teamdesk/pkg/ui"
	"github.com/teamdesk/teamdesk/pkg/ui/common"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the dashboard",
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
		m := ui.New(c)

		p := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		if _, err := p.Run(); err != nil {
			log.FromContext(ctx).Error("run ui", "err", err)
			return err
		}
		return nil
	},
}
