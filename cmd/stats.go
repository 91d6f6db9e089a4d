package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show profile statistics and recent lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
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

		list, err := profiles.NewStore(backend).Load(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(list))
		for _, p := range list {
			rows = append(rows, []string{
				p.ID, truncate(p.DisplayName, 18), p.GradeLevel,
				itoa(p.Stats.TotalPoints), itoa(p.Stats.StreakCount), itoa(p.Stats.CompletedLessons),
			})
		}
		fmt.Println("Profiles")
		printTable([]string{"ID", "Name", "Grade", "Points", "Streak", "Lessons"}, rows)

		events, err := st.EventRepo().QuerySessionEvents(ctx, "", store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("\nNo lessons played yet.")
			return nil
		}

		rows = rows[:0]
		for _, e := range events {
			result := ""
			if e.Action == store.SessionActionComplete {
				result = fmt.Sprintf("%d/%d  +%d XP", e.CorrectAnswers, e.QuestionsTotal, e.Points)
			}
			rows = append(rows, []string{
				e.Timestamp.Local().Format("2006-01-02 15:04"), e.ProfileID, e.Action,
				truncate(e.Topic, 24), e.Mode, result,
			})
		}
		fmt.Println("\nRecent lessons")
		printTable([]string{"Time", "Profile", "Action", "Topic", "Mode", "Result"}, rows)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent lesson events to show")
}
