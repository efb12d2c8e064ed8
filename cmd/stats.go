package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/topiq/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.Sessions().List(context.Background(), store.Filter{})
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No quizzes yet.")
			return nil
		}

		var completed, questions, correct int
		for _, rec := range sessions {
			questions += len(rec.Questions)
			if rec.Status == store.StatusCompleted {
				completed++
				correct += rec.Score
			}
		}

		fmt.Printf("Quizzes:    %d (%d completed)\n", len(sessions), completed)
		fmt.Printf("Questions:  %d\n", questions)
		if completed > 0 {
			var answered int
			for _, rec := range sessions {
				if rec.Status == store.StatusCompleted {
					answered += len(rec.Questions)
				}
			}
			if answered > 0 {
				fmt.Printf("Accuracy:   %.0f%% across completed quizzes\n",
					float64(correct)/float64(answered)*100)
			}
		}
		return nil
	},
}
