package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/newsdesk-cms/newsdesk/internal/client"
)

func (a *app) breakingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breaking",
		Short: "Manage the breaking-news ticker",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List ticker entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.client.ListBreakingNews(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(items, func() {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTEXT")
				for _, item := range items {
					fmt.Fprintf(w, "%s\t%s\n", item.ID, item.Text)
				}
				w.Flush()
			})
		},
	}

	create := &cobra.Command{
		Use:   "create <text>",
		Short: "Add a ticker entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.CreateBreakingNews(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update <id> <text>",
		Short: "Replace a ticker entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.UpdateBreakingNews(cmd.Context(), args[0], client.BreakingNewsItem{Text: args[1]})
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a ticker entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.DeleteBreakingNews(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}
