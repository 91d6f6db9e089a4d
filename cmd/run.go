package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/linguist/internal/app"
	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/llm"
	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/screen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	backend, closeBackend, err := profileBackend(ctx, cmd, st)
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}
	defer closeBackend()

	ps := profiles.NewStore(backend)
	if _, err := ps.Load(ctx); err != nil {
		return err
	}

	eventRepo := st.EventRepo()
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lessons will be unavailable until an API_KEY is set.")
		provider = nil
	}

	skip, _ := cmd.Flags().GetBool("skip-splash")
	return app.Run(app.Options{
		Services: screen.Services{
			Profiles: ps,
			Lessons:  lessons.New(provider, lessons.DefaultConfig()),
			Events:   eventRepo,
		},
		SkipSplash: skip,
	})
}
