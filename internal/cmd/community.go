package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
)

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Find members and manage connections",
}

var communityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List community members",
	Long: `List community members, optionally filtered by account type,
disability category, or location.

Examples:
  prideconnect community list
  prideconnect community list --type service_provider --location Berlin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Community); err != nil {
			return err
		}

		opts := api.ListUsersOptions{}
		opts.UserType, _ = cmd.Flags().GetString("type")
		opts.DisabilityCategory, _ = cmd.Flags().GetString("category")
		opts.Location, _ = cmd.Flags().GetString("location")
		opts.Limit, _ = cmd.Flags().GetInt("limit")

		users, err := store.Client().ListUsers(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if len(users) == 0 {
			fmt.Println("No members found.")
			return nil
		}

		for _, u := range users {
			extra := u.UserType
			if u.Location != "" {
				extra += ", " + u.Location
			}
			fmt.Printf("%s  %s (%s)\n", u.ID, u.Name, extra)
		}
		return nil
	},
}

var communityConnectCmd = &cobra.Command{
	Use:     "connect <user-id>",
	Aliases: []string{"request"},
	Short:   "Send a connection request",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Community); err != nil {
			return err
		}

		conn, err := store.Client().RequestConnection(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Connection request sent (%s)\n", conn.ID)
		return nil
	},
}

var communityPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List connection requests waiting for your response",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Community); err != nil {
			return err
		}

		pending, err := store.Client().ListPendingConnections(cmd.Context())
		if err != nil {
			return err
		}

		if len(pending) == 0 {
			fmt.Println("No pending requests.")
			return nil
		}

		for _, c := range pending {
			fmt.Printf("%s  from %s (%s)\n", c.ID, c.SenderName, c.CreatedAt.Format("2006-01-02"))
		}
		fmt.Println("\nRespond with 'prideconnect community respond <request-id> accept|decline'")
		return nil
	},
}

var communityRespondCmd = &cobra.Command{
	Use:   "respond <request-id> <accept|decline>",
	Short: "Accept or decline a connection request",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Community); err != nil {
			return err
		}

		action := strings.ToLower(args[1])
		if action != "accept" && action != "decline" {
			return fmt.Errorf("action must be accept or decline")
		}

		conn, err := store.Client().RespondToConnection(cmd.Context(), args[0], action)
		if err != nil {
			return err
		}

		fmt.Printf("Request %s.\n", conn.Status)
		return nil
	},
}

var communityConnectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "List your accepted connections",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Community); err != nil {
			return err
		}

		connections, err := store.Client().ListConnections(cmd.Context())
		if err != nil {
			return err
		}

		if len(connections) == 0 {
			fmt.Println("No connections yet.")
			return nil
		}

		me := store.State().User
		for _, c := range connections {
			name := c.SenderName
			if me != nil && c.SenderID == me.ID {
				name = c.ReceiverName
			}
			fmt.Printf("%s  %s\n", c.ID, name)
		}
		return nil
	},
}

func init() {
	communityListCmd.Flags().String("type", "", "filter by account type")
	communityListCmd.Flags().String("category", "", "filter by disability category")
	communityListCmd.Flags().String("location", "", "filter by location")
	communityListCmd.Flags().Int("limit", 20, "maximum number of members")

	communityCmd.AddCommand(communityListCmd)
	communityCmd.AddCommand(communityConnectCmd)
	communityCmd.AddCommand(communityPendingCmd)
	communityCmd.AddCommand(communityRespondCmd)
	communityCmd.AddCommand(communityConnectionsCmd)
	rootCmd.AddCommand(communityCmd)
}
