package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shristy0611/Wisdom-Bridge/internal/config"
	"github.com/shristy0611/Wisdom-Bridge/internal/store"
)

func openStore() (*store.Store, error) {
	s, err := store.Open(config.StorePath())
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return s, nil
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent theme searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		history := s.SearchHistory()
		if len(history) == 0 {
			fmt.Println("No searches yet.")
			return nil
		}
		for _, h := range history {
			when := time.UnixMilli(h.Timestamp).Format("2006-01-02 15:04")
			fmt.Printf("%s  %-4s %-24s %s\n", h.ID, h.Language, h.Theme, when)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a history entry and its cached results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if !s.DeleteHistoryEntry(args[0]) {
			return fmt.Errorf("no history entry with id %s", args[0])
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorited quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		favorites := s.FavoriteQuotes()
		if len(favorites) == 0 {
			fmt.Println("No favorites yet.")
			return nil
		}
		for _, f := range favorites {
			fmt.Printf("%s  %q - %s\n", f.ID, f.Text, f.Citation)
		}
		return nil
	},
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List journal reflections",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		reflections := s.Reflections()
		if len(reflections) == 0 {
			fmt.Println("No reflections yet.")
			return nil
		}
		for _, r := range reflections {
			when := time.UnixMilli(r.Timestamp).Format("2006-01-02 15:04")
			fmt.Printf("%s  %s\n  %s\n", r.QuoteID, when, r.Text)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.StorePath()
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		count, size, err := s.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Store: %s\n", dbPath)
		fmt.Printf("Records: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))
		fmt.Printf("History entries: %d\n", len(s.SearchHistory()))
		fmt.Printf("Cached themes: %d\n", len(s.CachedQuotes()))
		fmt.Printf("Favorites: %d\n", len(s.FavoriteQuotes()))
		fmt.Printf("Reflections: %d\n", len(s.Reflections()))
		return nil
	},
}

var flagPruneOlderThan string

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old cached quotes and stale history entries",
	Long: `Delete cached search results and history entries older than the retention
period. Favorites and journal entries are never pruned.

Uses the retention value from config (default: 90d) unless overridden with --older-than.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		retention := cfg.RetentionDuration()
		if flagPruneOlderThan != "" {
			d, err := parseAge(flagPruneOlderThan)
			if err != nil {
				return fmt.Errorf("invalid --older-than value: %w", err)
			}
			retention = d
		}

		cacheRemoved, historyRemoved := s.Prune(retention)
		if cacheRemoved == 0 && historyRemoved == 0 {
			fmt.Println("Nothing to prune.")
		} else {
			fmt.Printf("Pruned %d cached theme(s) and %d history entr(ies) older than %s.\n",
				cacheRemoved, historyRemoved, formatDuration(retention))
		}
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyDeleteCmd)
	pruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "", "override retention period (e.g., 30d, 720h)")
}
