package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/topiq/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		topic, _ := cmd.Flags().GetString("topic")
		limit, _ := cmd.Flags().GetInt("limit")

		switch status {
		case "", string(store.StatusIncomplete), string(store.StatusCompleted):
		default:
			return fmt.Errorf("invalid status %q: want %q or %q",
				status, store.StatusIncomplete, store.StatusCompleted)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.Sessions().List(context.Background(), store.Filter{
			Status: store.Status(status),
			Topic:  topic,
		})
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No quizzes found.")
			return nil
		}
		if limit > 0 && len(sessions) > limit {
			sessions = sessions[:limit]
		}

		fmt.Printf("%-36s  %-19s  %-30s  %-9s  %s\n",
			"ID", "Created", "Topic", "Questions", "Result")
		fmt.Println(strings.Repeat("─", 110))
		for _, rec := range sessions {
			topic := rec.Topic
			if len(topic) > 30 {
				topic = topic[:27] + "..."
			}
			result := "in progress"
			if rec.Status == store.StatusCompleted {
				result = fmt.Sprintf("%d/%d", rec.Score, len(rec.Questions))
			}
			fmt.Printf("%-36s  %-19s  %-30s  %-9d  %s\n",
				rec.ID,
				rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				topic,
				len(rec.Questions),
				result,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("status", "", "Filter by status (incomplete or completed)")
	historyCmd.Flags().String("topic", "", "Filter by topic substring")
	historyCmd.Flags().Int("limit", 0, "Maximum number of sessions to show (0 = all)")
}
