package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

func (a *app) saveCmd() *cobra.Command {
	var user, date, text string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or replace the memo of a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireUser(user); err != nil {
				return err
			}

			memo, err := a.client.SaveMemo(cmd.Context(), user, date, text)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(a.out, "saved memo %d for %s\n", memo.ID, memo.Date)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User ID")
	cmd.Flags().StringVarP(&date, "date", "d", entity.FormatDate(time.Now()), "Date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&text, "text", "m", "", "Memo text (required)")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var (
		user  string
		year  int
		month int
	)

	now := time.Now()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List memos of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireUser(user); err != nil {
				return err
			}

			memos, err := a.client.FetchMemos(cmd.Context(), user, year, month)
			if err != nil {
				return err
			}

			if len(memos) == 0 {
				_, _ = fmt.Fprintln(a.out, "no memos")
				return nil
			}

			for _, m := range memos {
				_, _ = fmt.Fprintf(a.out, "%d\t%s\t%s\n", m.ID, m.Date, m.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User ID")
	cmd.Flags().IntVarP(&year, "year", "y", now.Year(), "Year")
	cmd.Flags().IntVarP(&month, "month", "M", int(now.Month()), "Month (1-12)")

	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete MEMO_ID",
		Short: "Delete a memo by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid memo id %q", args[0])
			}

			if err := a.client.DeleteMemo(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(a.out, "Memo deleted successfully")
			return nil
		},
	}
}
