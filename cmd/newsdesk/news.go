package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/newsdesk-cms/newsdesk/internal/client"
)

func (a *app) newsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Manage news articles",
	}

	cmd.AddCommand(
		a.newsPublishCmd(),
		a.newsListCmd(),
		a.newsUpdateCmd(),
		a.newsDeleteCmd(),
	)
	return cmd
}

func (a *app) newsPublishCmd() *cobra.Command {
	var (
		upload    client.NewsUpload
		imagePath string
		videoPath string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a news article (multipart upload)",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.Open(imagePath)
			if err != nil {
				return err
			}
			defer image.Close()
			upload.Image = image
			upload.ImageName = filepath.Base(imagePath)

			if videoPath != "" {
				video, err := os.Open(videoPath)
				if err != nil {
					return err
				}
				defer video.Close()
				upload.Video = video
				upload.VideoName = filepath.Base(videoPath)
			}

			if upload.PublishedDate == "" {
				upload.PublishedDate = time.Now().Format("2006-01-02T15:04")
			}

			message, err := a.client.CreateNews(cmd.Context(), upload)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().StringVar(&upload.Title, "title", "", "article title")
	cmd.Flags().StringVar(&upload.Content, "content", "", "article body")
	cmd.Flags().StringVar(&upload.Category, "category", "", "article category")
	cmd.Flags().StringVar(&upload.PublishedDate, "published", "", "published date (defaults to now)")
	cmd.Flags().BoolVar(&upload.IsFeatured, "featured", true, "mark the article as featured")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to the article image")
	cmd.Flags().StringVar(&videoPath, "video", "", "path to an optional video")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func (a *app) newsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all news articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.client.ListNews(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(items, func() {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPUBLISHED")
				for _, n := range items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.Title, n.Category, n.PublishedDate)
				}
				w.Flush()
			})
		},
	}
}

func (a *app) newsUpdateCmd() *cobra.Command {
	var news client.News

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a news article's text fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.UpdateNews(cmd.Context(), args[0], news)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	cmd.Flags().StringVar(&news.Title, "title", "", "article title")
	cmd.Flags().StringVar(&news.Content, "content", "", "article body")
	cmd.Flags().StringVar(&news.Category, "category", "", "article category")
	cmd.Flags().StringVar(&news.State, "state", "", "regional state tag")
	cmd.Flags().StringVar(&news.PublishedDate, "published", "", "published date")

	return cmd
}

func (a *app) newsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a news article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.DeleteNews(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
}
