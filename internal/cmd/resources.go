package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Browse and share community resources",
}

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources",
	Long: `List shared resources, optionally filtered by category or tag.

Examples:
  prideconnect resources list
  prideconnect resources list --category legal --limit 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Resources); err != nil {
			return err
		}

		opts := api.ListResourcesOptions{}
		opts.Category, _ = cmd.Flags().GetString("category")
		opts.Tag, _ = cmd.Flags().GetString("tag")
		opts.Search, _ = cmd.Flags().GetString("search")
		opts.Limit, _ = cmd.Flags().GetInt("limit")

		resources, err := store.Client().ListResources(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if len(resources) == 0 {
			fmt.Println("No resources found.")
			return nil
		}

		for _, r := range resources {
			fmt.Printf("%s  %s\n", r.ID, r.Title)
			fmt.Printf("    %s by %s | %d views\n", r.Category, r.AuthorName, r.Views)
		}
		return nil
	},
}

var resourcesViewCmd = &cobra.Command{
	Use:     "view <resource-id>",
	Aliases: []string{"show"},
	Short:   "Show a resource",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Resources); err != nil {
			return err
		}

		r, err := store.Client().GetResource(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(r.Title)
		fmt.Printf("%s by %s", r.Category, r.AuthorName)
		if len(r.Tags) > 0 {
			fmt.Printf(" [%s]", strings.Join(r.Tags, ", "))
		}
		fmt.Printf("\n\n%s\n", r.Description)
		if r.URL != "" {
			fmt.Printf("\n%s\n", r.URL)
		}
		if r.Content != "" {
			fmt.Printf("\n%s\n", r.Content)
		}
		return nil
	},
}

var resourcesShareCmd = &cobra.Command{
	Use:     "share",
	Aliases: []string{"add"},
	Short:   "Share a new resource",
	Long: `Share a new resource with the community: a link, a guide, or both.

Examples:
  prideconnect resources share --title "Benefits guide" --category legal \
    --url https://example.org/guide --tag benefits`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Resources); err != nil {
			return err
		}

		req := api.CreateResourceRequest{}
		req.Title, _ = cmd.Flags().GetString("title")
		req.Description, _ = cmd.Flags().GetString("description")
		req.Category, _ = cmd.Flags().GetString("category")
		req.URL, _ = cmd.Flags().GetString("url")
		req.Content, _ = cmd.Flags().GetString("content")
		req.Tags, _ = cmd.Flags().GetStringSlice("tag")

		if req.Title == "" {
			return fmt.Errorf("--title is required")
		}

		r, err := store.Client().CreateResource(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Shared %q (%s)\n", r.Title, r.ID)
		return nil
	},
}

func init() {
	resourcesListCmd.Flags().String("category", "", "filter by category")
	resourcesListCmd.Flags().String("tag", "", "filter by tag")
	resourcesListCmd.Flags().String("search", "", "search in title and description")
	resourcesListCmd.Flags().Int("limit", 20, "maximum number of resources")

	resourcesShareCmd.Flags().String("title", "", "resource title")
	resourcesShareCmd.Flags().String("description", "", "short description")
	resourcesShareCmd.Flags().String("category", "general", "resource category")
	resourcesShareCmd.Flags().String("url", "", "external link")
	resourcesShareCmd.Flags().String("content", "", "inline content")
	resourcesShareCmd.Flags().StringSlice("tag", nil, "resource tags")

	resourcesCmd.AddCommand(resourcesListCmd)
	resourcesCmd.AddCommand(resourcesViewCmd)
	resourcesCmd.AddCommand(resourcesShareCmd)
	rootCmd.AddCommand(resourcesCmd)
}
