package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
)

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Browse the service provider directory",
}

var directoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List service providers",
	Long: `List accessibility service providers, optionally filtered by
service, disability focus, or location.

Examples:
  prideconnect directory list
  prideconnect directory list --service counseling --location Berlin
  prideconnect directory list --focus mobility`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Directory); err != nil {
			return err
		}

		opts := api.ListProvidersOptions{}
		opts.Service, _ = cmd.Flags().GetString("service")
		opts.DisabilityFocus, _ = cmd.Flags().GetString("focus")
		opts.Location, _ = cmd.Flags().GetString("location")
		opts.Search, _ = cmd.Flags().GetString("search")
		opts.Limit, _ = cmd.Flags().GetInt("limit")

		providers, err := store.Client().ListProviders(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if len(providers) == 0 {
			fmt.Println("No providers found.")
			return nil
		}

		for _, p := range providers {
			verified := ""
			if p.IsVerified {
				verified = " [verified]"
			}
			fmt.Printf("%s  %s%s\n", p.ID, p.Name, verified)
			fmt.Printf("    %s | %.1f stars (%d reviews)\n", p.Location, p.Rating, p.ReviewsCount)
		}
		return nil
	},
}

var directoryViewCmd = &cobra.Command{
	Use:     "view <provider-id>",
	Aliases: []string{"show"},
	Short:   "Show a service provider",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Directory); err != nil {
			return err
		}

		p, err := store.Client().GetProvider(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(p.Name)
		if p.IsVerified {
			fmt.Println("verified provider")
		}
		fmt.Printf("location: %s\n", p.Location)
		fmt.Printf("services: %s\n", strings.Join(p.Services, ", "))
		if len(p.DisabilityFocus) > 0 {
			fmt.Printf("focus:    %s\n", strings.Join(p.DisabilityFocus, ", "))
		}
		if p.Website != "" {
			fmt.Printf("website:  %s\n", p.Website)
		}
		if p.Email != "" {
			fmt.Printf("email:    %s\n", p.Email)
		}
		if p.Phone != "" {
			fmt.Printf("phone:    %s\n", p.Phone)
		}
		fmt.Printf("rating:   %.1f (%d reviews)\n\n%s\n", p.Rating, p.ReviewsCount, p.Description)
		return nil
	},
}

var directoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a service provider listing",
	Long: `Add a service provider listing to the directory.

Examples:
  prideconnect directory add --name "Access For All" --description "..." \
    --service counseling --service advocacy --location Berlin \
    --focus mobility --website https://access.example.org`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Directory); err != nil {
			return err
		}

		req := api.CreateProviderRequest{}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Description, _ = cmd.Flags().GetString("description")
		req.Services, _ = cmd.Flags().GetStringSlice("service")
		req.DisabilityFocus, _ = cmd.Flags().GetStringSlice("focus")
		req.Location, _ = cmd.Flags().GetString("location")
		req.Website, _ = cmd.Flags().GetString("website")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Phone, _ = cmd.Flags().GetString("phone")

		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}

		p, err := store.Client().CreateProvider(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Listed %q (%s)\n", p.Name, p.ID)
		return nil
	},
}

func init() {
	directoryListCmd.Flags().String("service", "", "filter by offered service")
	directoryListCmd.Flags().String("focus", "", "filter by disability focus")
	directoryListCmd.Flags().String("location", "", "filter by location")
	directoryListCmd.Flags().String("search", "", "search in name and description")
	directoryListCmd.Flags().Int("limit", 20, "maximum number of providers")

	directoryAddCmd.Flags().String("name", "", "provider name")
	directoryAddCmd.Flags().String("description", "", "provider description")
	directoryAddCmd.Flags().StringSlice("service", nil, "offered services")
	directoryAddCmd.Flags().StringSlice("focus", nil, "disability categories served")
	directoryAddCmd.Flags().String("location", "", "provider location")
	directoryAddCmd.Flags().String("website", "", "website URL")
	directoryAddCmd.Flags().String("email", "", "contact email")
	directoryAddCmd.Flags().String("phone", "", "contact phone")

	directoryCmd.AddCommand(directoryListCmd)
	directoryCmd.AddCommand(directoryViewCmd)
	directoryCmd.AddCommand(directoryAddCmd)
	rootCmd.AddCommand(directoryCmd)
}
