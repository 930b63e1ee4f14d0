package cmd

import (
	"fmt"
	"time"

	"github.com/harshadayini/The-Second-Mind/internal/config"
	"github.com/harshadayini/The-Second-Mind/internal/memory"
	"github.com/spf13/cobra"
)

var (
	flagLogLimit       int
	flagPruneOlderThan string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent agent events from the memory store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := memory.Open(config.MemoryPath())
		if err != nil {
			return fmt.Errorf("opening memory store: %w", err)
		}
		defer store.Close()

		events, err := store.RecentEvents(flagLogLimit)
		if err != nil {
			return fmt.Errorf("reading events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No events logged yet.")
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %s\n", e.At.Format("2006-01-02 15:04:05"), e.Message)
		}
		return nil
	},
}

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "List stored artifacts (external_data, external_urls)",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := memory.Open(config.MemoryPath())
		if err != nil {
			return fmt.Errorf("opening memory store: %w", err)
		}
		defer store.Close()

		artifacts, err := store.Artifacts()
		if err != nil {
			return fmt.Errorf("reading artifacts: %w", err)
		}
		if len(artifacts) == 0 {
			fmt.Println("No artifacts stored yet.")
			return nil
		}
		for _, a := range artifacts {
			fmt.Printf("%s  (updated %s)\n", a.Key, a.UpdatedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("  %s\n", truncateValue(a.Value, 200))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show memory store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.MemoryPath()
		store, err := memory.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening memory store: %w", err)
		}
		defer store.Close()

		events, artifacts, size, err := store.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Memory: %s\n", dbPath)
		fmt.Printf("Events: %d\n", events)
		fmt.Printf("Artifacts: %d\n", artifacts)
		fmt.Printf("Size: %s\n", formatBytes(size))
		return nil
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old events from the memory store",
	RunE: func(cmd *cobra.Command, args []string) error {
		retention := 30 * 24 * time.Hour
		if flagPruneOlderThan != "" {
			d, err := parseRetention(flagPruneOlderThan)
			if err != nil {
				return fmt.Errorf("invalid --older-than value: %w", err)
			}
			retention = d
		}

		store, err := memory.Open(config.MemoryPath())
		if err != nil {
			return fmt.Errorf("opening memory store: %w", err)
		}
		defer store.Close()

		deleted, err := store.Prune(retention)
		if err != nil {
			return fmt.Errorf("pruning: %w", err)
		}

		if deleted == 0 {
			fmt.Println("Nothing to prune.")
		} else {
			fmt.Printf("Pruned %d event(s) older than %s.\n", deleted, formatDuration(retention))
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntVar(&flagLogLimit, "limit", 20, "maximum events to show")
	pruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "", "retention period (e.g., 30d, 720h)")
}

// parseRetention accepts Go durations plus "Nd" day syntax.
func parseRetention(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncateValue(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
