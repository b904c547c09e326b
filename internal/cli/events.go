package cli

import (
	"fmt"
	"time"

	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/observability"
	"github.com/spf13/cobra"
)

var (
	eventsSince string
	eventsType  string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Read the roadmap event log",
	Long: `Read events from the append-only JSONL event log: task lifecycle
changes, dependency edits, and validation runs. --since accepts durations
like 7d or 24h; --type filters to one event type.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if EventLog == nil {
			return fmt.Errorf("event log not available")
		}

		filter := observability.EventFilter{Type: eventsType}
		if eventsSince != "" {
			since, err := parseSince(eventsSince)
			if err != nil {
				return fmt.Errorf("reading events: %w", err)
			}
			filter.Since = &since
		}

		events, err := EventLog.Read(filter)
		if err != nil {
			return fmt.Errorf("reading events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		for _, e := range events {
			line := fmt.Sprintf("%s  %-24s %s", e.Time.Format(time.RFC3339), e.Type, e.Message)
			if len(e.Data) > 0 {
				line += fmt.Sprintf("  %v", e.Data)
			}
			fmt.Println(line)
		}
		return nil
	},
}

// parseSince parses a human-friendly duration string like "7d" or "24h" into
// the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}

func init() {
	eventsCmd.Flags().StringVar(&eventsSince, "since", "", "Only show events newer than this (e.g. 7d, 24h)")
	eventsCmd.Flags().StringVar(&eventsType, "type", "", "Only show events of this type (e.g. task.created)")
	rootCmd.AddCommand(eventsCmd)
}
