package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/session"
)

var (
	loginUsername string
	loginPassword string

	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			sess, err := session.Open(cfg)
			if err != nil {
				return err
			}

			username := loginUsername
			password := loginPassword
			reader := bufio.NewReader(cmd.InOrStdin())
			if username == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Логин: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				username = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Пароль: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			client := api.NewClient(cfg, sess)
			tokens, err := client.Login(ctx, username, password)
			if err != nil {
				return err
			}
			if err := sess.SetTokens(tokens.Access, tokens.Refresh); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Вы вошли как %s\n", username)
			return nil
		},
	}
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password, read from the prompt when omitted")
}
