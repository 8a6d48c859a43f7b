package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/blog-calendar/pkg/memoclient"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	api    string
	token  string
	out    io.Writer
	client *memoclient.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "memoctl",
		Short:         "CLI client for the blog calendar API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client, err := memoclient.New(memoclient.NewOptions(a.api, memoclient.WithToken(a.token)))
			if err != nil {
				return fmt.Errorf("init client: %w", err)
			}
			a.client = client
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.api, "api", "a", envOr("MEMOCTL_API", "http://localhost:8081"), "Blog API base URL")
	root.PersistentFlags().StringVarP(&a.token, "token", "t", os.Getenv("MEMOCTL_TOKEN"), "Bearer token")

	root.AddCommand(
		a.saveCmd(),
		a.listCmd(),
		a.deleteCmd(),
		a.feedCmd(),
		a.calendarCmd(),
	)

	return root
}

// requireUser allows an empty user only when a token identifies the caller.
func (a *app) requireUser(user string) error {
	if user == "" && a.token == "" {
		return fmt.Errorf("--user is required without --token")
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
