package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Profile); err != nil {
			return err
		}

		u := store.State().User
		fmt.Println(u.Name)
		fmt.Printf("email:    %s\n", u.Email)
		fmt.Printf("type:     %s\n", u.UserType)
		if u.OrganizationName != "" {
			fmt.Printf("org:      %s\n", u.OrganizationName)
		}
		if u.Location != "" {
			fmt.Printf("location: %s\n", u.Location)
		}
		if len(u.DisabilityCategories) > 0 {
			fmt.Printf("categories: %s\n", strings.Join(u.DisabilityCategories, ", "))
		}
		if u.Bio != "" {
			fmt.Printf("\n%s\n", u.Bio)
		}
		return nil
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update your profile",
	Long: `Update profile fields. Only the flags you pass change; everything
else keeps its current value.

Examples:
  prideconnect profile edit --bio "Organizer and wheelchair user in Berlin"
  prideconnect profile edit --name "Alex Doe" --location Berlin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Profile); err != nil {
			return err
		}

		req := api.UpdateProfileRequest{}
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			req.Name = &v
		}
		if cmd.Flags().Changed("bio") {
			v, _ := cmd.Flags().GetString("bio")
			req.Bio = &v
		}
		if cmd.Flags().Changed("location") {
			v, _ := cmd.Flags().GetString("location")
			req.Location = &v
		}
		if cmd.Flags().Changed("organization") {
			v, _ := cmd.Flags().GetString("organization")
			req.OrganizationName = &v
		}
		if cmd.Flags().Changed("disability-category") {
			v, _ := cmd.Flags().GetStringSlice("disability-category")
			req.DisabilityCategories = v
		}

		user, err := store.UpdateProfile(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Profile updated for %s.\n", user.Name)
		return nil
	},
}

func init() {
	profileEditCmd.Flags().String("name", "", "display name")
	profileEditCmd.Flags().String("bio", "", "short bio")
	profileEditCmd.Flags().String("location", "", "location")
	profileEditCmd.Flags().String("organization", "", "organization name")
	profileEditCmd.Flags().StringSlice("disability-category", nil, "disability categories")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}
