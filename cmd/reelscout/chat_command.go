package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := ctx.newSession()
			if err != nil {
				return err
			}
			program := tea.NewProgram(newChatModel(session, store))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run chat ui: %w", err)
			}
			return nil
		},
	}
}
