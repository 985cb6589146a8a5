package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the login session",
	Long: `Manage the login session with the PrideConnect platform.

The session token is stored under your user configuration directory and is
reused until you log out or it expires.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	Long: `Log in to the PrideConnect platform.

Credentials can be passed as flags or entered interactively.

Examples:
  prideconnect auth login
  prideconnect auth login --email user@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Login); err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		user, err := store.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new PrideConnect account and log in with it.

Examples:
  prideconnect auth register --email user@example.com --password secret --name "Alex Doe"
  prideconnect auth register --email org@example.com --password secret --name "Alex Doe" \
    --user-type service_provider --organization "Access For All"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Register); err != nil {
			return err
		}

		req := api.RegisterRequest{}
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Name, _ = cmd.Flags().GetString("name")
		req.UserType, _ = cmd.Flags().GetString("user-type")
		req.OrganizationName, _ = cmd.Flags().GetString("organization")
		categories, _ := cmd.Flags().GetStringSlice("disability-category")
		req.DisabilityCategories = categories

		if req.Email == "" || req.Password == "" || req.Name == "" {
			var selected []string
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Name").Value(&req.Name),
				huh.NewInput().Title("Email").Value(&req.Email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&req.Password),
				huh.NewSelect[string]().Title("Account type").
					Options(huh.NewOptions(api.UserTypes...)...).
					Value(&req.UserType),
				huh.NewMultiSelect[string]().Title("Disability categories (optional)").
					Options(huh.NewOptions(api.DisabilityCategories...)...).
					Value(&selected),
			))
			if err := form.Run(); err != nil {
				return err
			}
			req.DisabilityCategories = selected
		}

		user, err := store.Register(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Welcome to PrideConnect, %s! You are now logged in.\n", user.Name)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		store.Logout()
		fmt.Println("Logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	Long: `Show the current session: who is logged in and when the stored
token expires.

Examples:
  prideconnect auth status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		st := store.State()
		if !st.Authenticated() {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'prideconnect auth login' to authenticate.")
			return nil
		}

		fmt.Println("Logged in")
		fmt.Printf("Name:   %s\n", st.User.Name)
		fmt.Printf("Email:  %s\n", st.User.Email)
		fmt.Printf("Type:   %s\n", st.User.UserType)
		if st.User.OrganizationName != "" {
			fmt.Printf("Org:    %s\n", st.User.OrganizationName)
		}
		if len(st.User.DisabilityCategories) > 0 {
			fmt.Printf("Categories: %s\n", strings.Join(st.User.DisabilityCategories, ", "))
		}
		if expiry, ok := store.TokenExpiry(); ok {
			fmt.Printf("Token expires: %s\n", expiry.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var authSSOCmd = &cobra.Command{
	Use:   "sso",
	Short: "Adopt a token obtained from a single sign-on flow",
	Long: `Adopt a token issued outside the normal login flow, for example by
a single sign-on callback. The token is verified against the backend before
it replaces the current session.

Examples:
  prideconnect auth sso --token eyJhbGciOi...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Token").Value(&token),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		user, err := store.AdoptExternalToken(cmd.Context(), token)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password")
	authRegisterCmd.Flags().String("name", "", "display name")
	authRegisterCmd.Flags().String("user-type", api.UserTypeIndividual, "account type: "+strings.Join(api.UserTypes, ", "))
	authRegisterCmd.Flags().String("organization", "", "organization name (service providers and organizations)")
	authRegisterCmd.Flags().StringSlice("disability-category", nil, "disability categories")

	authSSOCmd.Flags().String("token", "", "token issued by the SSO flow")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authSSOCmd)
	rootCmd.AddCommand(authCmd)
}
