package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/topiq/internal/app"
	"github.com/abhisek/topiq/internal/llm"
	"github.com/abhisek/topiq/internal/quizgen"
	"github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	engine := session.NewEngine(st.Sessions())

	var generator quizgen.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "New quizzes will be unavailable; past quizzes can still be reviewed.")
	} else {
		generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return app.Run(engine, generator)
}
