package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/newsdesk-cms/newsdesk/internal/client"
)

func (a *app) podcastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podcast",
		Short: "Manage podcasts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all podcasts",
		RunE: func(cmd *cobra.Command, args []string) error {
			podcasts, err := a.client.ListPodcasts(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(podcasts, func() {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTITLE\tAUTHOR")
				for _, p := range podcasts {
					fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Title, p.Author)
				}
				w.Flush()
			})
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one podcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			podcast, err := a.client.GetPodcast(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(podcast, func() {
				fmt.Printf("%s\nauthor: %s\nvideo: %s\n\n%s\n",
					podcast.Title, podcast.Author, podcast.VideoURL, podcast.Description)
			})
		},
	}

	var podcast client.Podcast
	podcastFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&podcast.Title, "title", "", "podcast title")
		c.Flags().StringVar(&podcast.Description, "description", "", "podcast description")
		c.Flags().StringVar(&podcast.Author, "author", "", "author name")
		c.Flags().StringVar(&podcast.Thumbnail, "thumbnail", "", "thumbnail URL")
		c.Flags().StringVar(&podcast.VideoURL, "video", "", "hosted video URL")
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a podcast",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.CreatePodcast(cmd.Context(), podcast)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
	podcastFlags(create)
	_ = create.MarkFlagRequired("title")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a podcast (partial)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.UpdatePodcast(cmd.Context(), args[0], podcast)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
	podcastFlags(update)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a podcast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.DeletePodcast(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}
