package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

func (a *app) feedCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the latest posts and the categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				posts      []v1.Post
				categories []v1.Category
			)

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.Go(func() error {
				var err error
				posts, err = a.client.LatestPosts(ctx, limit)
				return err
			})
			eg.Go(func() error {
				var err error
				categories, err = a.client.Categories(ctx)
				return err
			})
			if err := eg.Wait(); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(a.out, "Latest posts:")
			for _, p := range posts {
				_, _ = fmt.Fprintf(a.out, "  %s [%s] %s\n", p.Title, p.CategoryName(), p.CreatedAt.Format("2006-01-02"))
			}

			_, _ = fmt.Fprintln(a.out, "Categories:")
			for _, c := range categories {
				_, _ = fmt.Fprintf(a.out, "  %s (%s)\n", c.Name, c.Slug)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of posts (server default when 0)")

	return cmd
}
