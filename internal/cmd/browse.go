package cmd

import (
	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/session"
	"github.com/prideconnect/prideconnect/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive interface",
	Long: `Open the interactive full-screen interface. The session resolves
in the background while the interface starts, so a stored login is picked
up without blocking.

Examples:
  prideconnect browse`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		authPath, err := session.DefaultAuthPath()
		if err != nil {
			return err
		}

		// The interface drives Initialize itself so it can render the
		// loading state.
		store := session.New(client, session.NewFileStorage(authPath))
		return tui.Run(cmd.Context(), store)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
