package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"eventadmin/internal/domain"
	"eventadmin/internal/services"
)

var (
	listSearch   string
	listHidePast bool

	draftFilePath  string
	posterFilePath string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and manage events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.events.Refresh(cmd.Context()); err != nil {
			// Non-fatal: render the empty state, like the web list does.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		events := a.events.Filter(listSearch, !listHidePast, time.Now())
		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDATE\tTIME\tLOCATION\tSPEAKER\tSTATUS")
		for _, ev := range events {
			status := "Past"
			if ev.Upcoming(time.Now()) {
				status = "Upcoming"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				ev.ID, ev.Name, ev.Date, ev.Time, ev.Location, ev.SpeakerName, status)
		}
		return w.Flush()
	},
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one event in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.events.Refresh(cmd.Context()); err != nil {
			return err
		}
		ev, ok := a.events.Get(args[0])
		if !ok {
			return fmt.Errorf("event %q not found", args[0])
		}
		printEvent(ev)
		return nil
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create --file draft.yaml --poster image.jpg",
	Short: "Create an event from a draft file",
	Long: `Create an event. The draft file holds the event and speaker fields in
YAML; the poster image is uploaded first and its server URL attached to the
submission.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		form := services.NewForm(a.gateway, a.logger)
		return runSubmit(cmd, a, form)
	},
}

var eventsEditCmd = &cobra.Command{
	Use:   "edit <id> --file draft.yaml",
	Short: "Edit an existing event",
	Long: `Edit an event. The draft is pre-seeded from the server's record; fields
present in the draft file replace the seeded values. Without --poster the
existing poster is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.events.Refresh(cmd.Context()); err != nil {
			return err
		}
		ev, ok := a.events.Get(args[0])
		if !ok {
			return fmt.Errorf("event %q not found", args[0])
		}
		form := services.NewFormFromEvent(ev, a.gateway, a.logger)
		return runSubmit(cmd, a, form)
	},
}

// runSubmit drives a form through draft load, poster upload, and
// submission, then reconciles the collection with the canonical record.
func runSubmit(cmd *cobra.Command, a *app, form *services.Form) error {
	if draftFilePath != "" {
		if err := applyDraftFile(draftFilePath, form.Draft()); err != nil {
			return err
		}
	} else if form.EventID() == "" {
		return fmt.Errorf("--file is required")
	}

	if posterFilePath != "" {
		data, err := os.ReadFile(posterFilePath)
		if err != nil {
			return fmt.Errorf("read poster: %w", err)
		}
		if err := form.SelectPoster(posterFilePath, data); err != nil {
			return err
		}
		if err := form.UploadPoster(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Poster uploaded: %s\n", form.PosterURL())
	}

	if err := form.EnsureUser(cmd.Context()); err != nil {
		return err
	}
	ev, err := form.Submit(cmd.Context())
	if err != nil {
		return err
	}
	a.events.ApplyCanonical(ev)
	if form.EventID() == "" {
		fmt.Printf("Event created: %s\n", ev.ID)
	} else {
		fmt.Printf("Event updated: %s\n", ev.ID)
	}
	return nil
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show event counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.events.Refresh(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		st := a.events.Stats(time.Now())
		fmt.Printf("Total events:    %d\n", st.Total)
		fmt.Printf("Upcoming events: %d\n", st.Upcoming)
		fmt.Printf("This month:      %d\n", st.ThisMonth)
		fmt.Printf("Locations:       %d\n", st.Locations)
		return nil
	},
}

func printEvent(ev domain.Event) {
	fmt.Printf("ID:          %s\n", ev.ID)
	fmt.Printf("Name:        %s\n", ev.Name)
	fmt.Printf("Description: %s\n", ev.Description)
	fmt.Printf("Date:        %s %s\n", ev.Date, ev.Time)
	fmt.Printf("Location:    %s\n", ev.Location)
	fmt.Printf("Speaker:     %s (%s, %s)\n", ev.SpeakerName, ev.SpeakerPosition, ev.Company)
	fmt.Printf("Bio:         %s\n", ev.SpeakerDescription)
	if ev.PosterURL != "" {
		fmt.Printf("Poster:      %s\n", ev.PosterURL)
	}
	if ev.VideoURL != "" {
		fmt.Printf("Video:       %s\n", ev.VideoURL)
	}
	fmt.Printf("Booking:     %s\n", ev.BookingURL)
}

func init() {
	eventsListCmd.Flags().StringVar(&listSearch, "search", "", "match against name, location, or speaker")
	eventsListCmd.Flags().BoolVar(&listHidePast, "hide-past", false, "drop events whose date has passed")

	for _, c := range []*cobra.Command{eventsCreateCmd, eventsEditCmd} {
		c.Flags().StringVar(&draftFilePath, "file", "", "YAML draft file with the event fields")
		c.Flags().StringVar(&posterFilePath, "poster", "", "poster image to upload")
	}

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsShowCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsEditCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(dashboardCmd)
}
