package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/topiq/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored quiz sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes every stored quiz. Re-run with --yes to confirm.")
			return nil
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

		ctx := context.Background()
		sessions, err := s.Sessions().List(ctx, store.Filter{})
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		for _, rec := range sessions {
			if err := s.Sessions().Delete(ctx, rec.ID); err != nil {
				return fmt.Errorf("delete session %s: %w", rec.ID, err)
			}
		}

		fmt.Printf("Deleted %d sessions.\n", len(sessions))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
