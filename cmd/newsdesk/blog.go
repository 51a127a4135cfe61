package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/newsdesk-cms/newsdesk/internal/client"
)

func (a *app) blogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Manage blog posts",
	}

	cmd.AddCommand(
		a.blogListCmd(),
		a.blogGetCmd(),
		a.blogCreateCmd(),
		a.blogUpdateCmd(),
		a.blogDeleteCmd(),
	)
	return cmd
}

func (a *app) blogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all blog posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			blogs, err := a.client.ListBlogs(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(blogs, func() {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tAUTHOR\tPUBLISHED")
				for _, b := range blogs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Category, b.Author, b.PublishedDate)
				}
				w.Flush()
			})
		},
	}
}

func (a *app) blogGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blog, err := a.client.GetBlog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(blog, func() {
				fmt.Printf("%s (%s)\nauthor: %s\npublished: %s\n\n%s\n",
					blog.Title, blog.Category, blog.Author, blog.PublishedDate, blog.Content)
			})
		},
	}
}

func blogFlags(cmd *cobra.Command, blog *client.Blog) {
	cmd.Flags().StringVar(&blog.Title, "title", "", "post title")
	cmd.Flags().StringVar(&blog.Content, "content", "", "post body (HTML passed through as-is)")
	cmd.Flags().StringVar(&blog.Category, "category", "", "post category")
	cmd.Flags().StringVar(&blog.Author, "author", "", "author name")
	cmd.Flags().StringVar(&blog.ThumbnailURL, "thumbnail", "", "thumbnail URL")
	cmd.Flags().StringSliceVar(&blog.Images, "image", nil, "image URL (repeatable)")
	cmd.Flags().StringVar(&blog.PublishedDate, "published", "", "published date")
}

func (a *app) blogCreateCmd() *cobra.Command {
	var blog client.Blog

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blog post",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.CreateBlog(cmd.Context(), blog)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	blogFlags(cmd, &blog)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (a *app) blogUpdateCmd() *cobra.Command {
	var blog client.Blog

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.UpdateBlog(cmd.Context(), args[0], blog)
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}

	blogFlags(cmd, &blog)
	return cmd
}

func (a *app) blogDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := a.client.DeleteBlog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(message)
			return nil
		},
	}
}
