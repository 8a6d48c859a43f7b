package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/blog-calendar/internal/ui/calendarui"
)

func (a *app) calendarCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Open the interactive memo calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireUser(user); err != nil {
				return err
			}

			m := calendarui.NewModel(cmd.Context(), a.client, user, time.Now())

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run calendar: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User ID")

	return cmd
}
