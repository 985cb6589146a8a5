package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform-wide counters",
	Long: `Show the platform-wide counters the landing page displays:
members, providers, events, forum posts, and resources. No login required.

Examples:
  prideconnect stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		stats, err := client.GetStats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Members:    %d\n", stats.Users)
		fmt.Printf("Providers:  %d\n", stats.Providers)
		fmt.Printf("Events:     %d\n", stats.Events)
		fmt.Printf("Posts:      %d\n", stats.Posts)
		fmt.Printf("Resources:  %d\n", stats.Resources)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
