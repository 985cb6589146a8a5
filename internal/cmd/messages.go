package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/route"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read and send direct messages",
}

var messagesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"conversations"},
	Short:   "List conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Messages); err != nil {
			return err
		}

		conversations, err := store.Client().ListConversations(cmd.Context())
		if err != nil {
			return err
		}

		if len(conversations) == 0 {
			fmt.Println("No conversations yet.")
			return nil
		}

		for _, c := range conversations {
			unread := ""
			if c.UnreadCount > 0 {
				unread = fmt.Sprintf(" (%d unread)", c.UnreadCount)
			}
			fmt.Printf("%s  %s%s\n", c.UserID, c.UserName, unread)
			fmt.Printf("    %s\n", c.LastMessage)
		}
		return nil
	},
}

var messagesWithCmd = &cobra.Command{
	Use:     "with <user-id>",
	Aliases: []string{"thread"},
	Short:   "Show the conversation with a member",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Messages); err != nil {
			return err
		}

		messages, err := store.Client().ListMessagesWith(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(messages) == 0 {
			fmt.Println("No messages yet.")
			return nil
		}

		me := store.State().User
		for _, m := range messages {
			sender := m.SenderName
			if me != nil && m.SenderID == me.ID {
				sender = "you"
			}
			fmt.Printf("%s: %s\n", sender, m.Content)
		}
		return nil
	},
}

var messagesSendCmd = &cobra.Command{
	Use:   "send <user-id> <content>",
	Short: "Send a direct message",
	Long: `Send a direct message to another member.

Examples:
  prideconnect messages send 7f3a2b "See you at the meetup!"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Messages); err != nil {
			return err
		}

		if _, err := store.Client().SendMessage(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Println("Sent.")
		return nil
	},
}

func init() {
	messagesCmd.AddCommand(messagesListCmd)
	messagesCmd.AddCommand(messagesWithCmd)
	messagesCmd.AddCommand(messagesSendCmd)
	rootCmd.AddCommand(messagesCmd)
}
