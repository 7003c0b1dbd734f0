package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <query>",
		Short: "Ask a single question without opening the chat UI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := ctx.newSession()
			if err != nil {
				return err
			}
			turn := session.HandleQuery(cmd.Context(), strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), turn.Content)
			return nil
		},
	}
}
