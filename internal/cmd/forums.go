package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
)

var forumsCmd = &cobra.Command{
	Use:   "forums",
	Short: "Browse and post in the community forums",
}

var forumsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List forum posts",
	Long: `List forum posts, optionally filtered by category, tag, or a
search term.

Examples:
  prideconnect forums list
  prideconnect forums list --category advocacy --limit 10
  prideconnect forums list --search "accessible housing"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Forums); err != nil {
			return err
		}

		opts := api.ListForumPostsOptions{}
		opts.Category, _ = cmd.Flags().GetString("category")
		opts.Tag, _ = cmd.Flags().GetString("tag")
		opts.Search, _ = cmd.Flags().GetString("search")
		opts.Limit, _ = cmd.Flags().GetInt("limit")

		posts, err := store.Client().ListForumPosts(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if len(posts) == 0 {
			fmt.Println("No posts found.")
			return nil
		}

		for _, p := range posts {
			fmt.Printf("%s  %s\n", p.ID, p.Title)
			fmt.Printf("    by %s in %s | %d likes, %d comments\n",
				p.AuthorName, p.Category, p.Likes, p.CommentsCount)
		}
		return nil
	},
}

var forumsViewCmd = &cobra.Command{
	Use:     "view <post-id>",
	Aliases: []string{"show"},
	Short:   "Show a forum post with its comments",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.ForumPost); err != nil {
			return err
		}

		post, err := store.Client().GetForumPost(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(post.Title)
		fmt.Printf("by %s in %s", post.AuthorName, post.Category)
		if len(post.Tags) > 0 {
			fmt.Printf(" [%s]", strings.Join(post.Tags, ", "))
		}
		fmt.Printf("\n%d likes\n\n%s\n", post.Likes, post.Content)

		comments, err := store.Client().ListComments(cmd.Context(), post.ID)
		if err != nil {
			return err
		}

		if len(comments) > 0 {
			fmt.Printf("\nComments (%d):\n", len(comments))
			for _, c := range comments {
				fmt.Printf("  %s: %s\n", c.AuthorName, c.Content)
			}
		}
		return nil
	},
}

var forumsPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Publish a new forum post",
	Long: `Publish a new forum post.

Examples:
  prideconnect forums post --title "Meetup next week?" --content "Anyone in Berlin?" --category community
  prideconnect forums post --title "Ramp review" --content "..." --category accessibility --tag housing --tag berlin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Forums); err != nil {
			return err
		}

		req := api.CreateForumPostRequest{}
		req.Title, _ = cmd.Flags().GetString("title")
		req.Content, _ = cmd.Flags().GetString("content")
		req.Category, _ = cmd.Flags().GetString("category")
		req.Tags, _ = cmd.Flags().GetStringSlice("tag")

		if req.Title == "" || req.Content == "" {
			return fmt.Errorf("--title and --content are required")
		}

		post, err := store.Client().CreateForumPost(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Posted %q (%s)\n", post.Title, post.ID)
		return nil
	},
}

var forumsLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a forum post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Forums); err != nil {
			return err
		}

		if err := store.Client().LikeForumPost(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Liked.")
		return nil
	},
}

var forumsCommentCmd = &cobra.Command{
	Use:   "comment <post-id> <content>",
	Short: "Comment on a forum post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.ForumPost); err != nil {
			return err
		}

		comment, err := store.Client().CreateComment(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Comment added (%s)\n", comment.ID)
		return nil
	},
}

func init() {
	forumsListCmd.Flags().String("category", "", "filter by category")
	forumsListCmd.Flags().String("tag", "", "filter by tag")
	forumsListCmd.Flags().String("search", "", "search in title and content")
	forumsListCmd.Flags().Int("limit", 20, "maximum number of posts")

	forumsPostCmd.Flags().String("title", "", "post title")
	forumsPostCmd.Flags().String("content", "", "post body")
	forumsPostCmd.Flags().String("category", "general", "post category")
	forumsPostCmd.Flags().StringSlice("tag", nil, "post tags")

	forumsCmd.AddCommand(forumsListCmd)
	forumsCmd.AddCommand(forumsViewCmd)
	forumsCmd.AddCommand(forumsPostCmd)
	forumsCmd.AddCommand(forumsLikeCmd)
	forumsCmd.AddCommand(forumsCommentCmd)
	rootCmd.AddCommand(forumsCmd)
}
