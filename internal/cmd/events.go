package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and organize accessible events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	Long: `List upcoming events, optionally filtered by type, location, or
virtual attendance.

Examples:
  prideconnect events list
  prideconnect events list --type social --location Berlin
  prideconnect events list --virtual --include-past`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Events); err != nil {
			return err
		}

		opts := api.ListEventsOptions{}
		opts.EventType, _ = cmd.Flags().GetString("type")
		opts.Location, _ = cmd.Flags().GetString("location")
		opts.PastIncluded, _ = cmd.Flags().GetBool("include-past")
		opts.Limit, _ = cmd.Flags().GetInt("limit")
		if cmd.Flags().Changed("virtual") {
			v, _ := cmd.Flags().GetBool("virtual")
			opts.IsVirtual = &v
		}

		events, err := store.Client().ListEvents(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		for _, e := range events {
			where := e.Location
			if e.IsVirtual {
				where = "virtual"
			}
			fmt.Printf("%s  %s\n", e.ID, e.Title)
			fmt.Printf("    %s | %s | %s | %d attending\n",
				e.StartDate, e.EventType, where, e.AttendeesCount)
		}
		return nil
	},
}

var eventsViewCmd = &cobra.Command{
	Use:     "view <event-id>",
	Aliases: []string{"show"},
	Short:   "Show an event",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Events); err != nil {
			return err
		}

		e, err := store.Client().GetEvent(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(e.Title)
		fmt.Printf("organized by %s\n", e.OrganizerName)
		fmt.Printf("starts: %s\n", e.StartDate)
		if e.EndDate != "" {
			fmt.Printf("ends:   %s\n", e.EndDate)
		}
		if e.IsVirtual {
			fmt.Printf("virtual event")
			if e.VirtualLink != "" {
				fmt.Printf(": %s", e.VirtualLink)
			}
			fmt.Println()
		} else {
			fmt.Printf("location: %s\n", e.Location)
		}
		if len(e.AccessibilityFeatures) > 0 {
			fmt.Printf("accessibility: %s\n", strings.Join(e.AccessibilityFeatures, ", "))
		}
		fmt.Printf("%d attending\n\n%s\n", e.AttendeesCount, e.Description)
		return nil
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new event",
	Long: `Create a new event.

Examples:
  prideconnect events create --title "Pride picnic" --description "..." \
    --start 2026-09-12T14:00:00Z --location "Tempelhofer Feld" \
    --accessibility wheelchair_accessible --accessibility sign_language
  prideconnect events create --title "Online meetup" --description "..." \
    --start 2026-09-20T18:00:00Z --virtual --virtual-link https://meet.example.org/x`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Events); err != nil {
			return err
		}

		req := api.CreateEventRequest{}
		req.Title, _ = cmd.Flags().GetString("title")
		req.Description, _ = cmd.Flags().GetString("description")
		req.EventType, _ = cmd.Flags().GetString("type")
		req.Location, _ = cmd.Flags().GetString("location")
		req.IsVirtual, _ = cmd.Flags().GetBool("virtual")
		req.VirtualLink, _ = cmd.Flags().GetString("virtual-link")
		req.StartDate, _ = cmd.Flags().GetString("start")
		req.EndDate, _ = cmd.Flags().GetString("end")
		req.AccessibilityFeatures, _ = cmd.Flags().GetStringSlice("accessibility")

		if req.Title == "" || req.StartDate == "" {
			return fmt.Errorf("--title and --start are required")
		}

		e, err := store.Client().CreateEvent(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Created %q (%s)\n", e.Title, e.ID)
		return nil
	},
}

var eventsAttendCmd = &cobra.Command{
	Use:   "attend <event-id>",
	Short: "RSVP to an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if err := requireRoute(store, route.Events); err != nil {
			return err
		}

		if err := store.Client().AttendEvent(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("See you there!")
		return nil
	},
}

func init() {
	eventsListCmd.Flags().String("type", "", "filter by event type")
	eventsListCmd.Flags().String("location", "", "filter by location")
	eventsListCmd.Flags().Bool("virtual", false, "only virtual (or with =false, only in-person) events")
	eventsListCmd.Flags().Bool("include-past", false, "include events that already happened")
	eventsListCmd.Flags().Int("limit", 20, "maximum number of events")

	eventsCreateCmd.Flags().String("title", "", "event title")
	eventsCreateCmd.Flags().String("description", "", "event description")
	eventsCreateCmd.Flags().String("type", "social", "event type")
	eventsCreateCmd.Flags().String("location", "", "event location")
	eventsCreateCmd.Flags().Bool("virtual", false, "the event happens online")
	eventsCreateCmd.Flags().String("virtual-link", "", "meeting link for virtual events")
	eventsCreateCmd.Flags().String("start", "", "start time (RFC 3339)")
	eventsCreateCmd.Flags().String("end", "", "end time (RFC 3339)")
	eventsCreateCmd.Flags().StringSlice("accessibility", nil, "accessibility features")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsViewCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsAttendCmd)
	rootCmd.AddCommand(eventsCmd)
}
