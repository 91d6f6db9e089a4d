package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/linguist/internal/llm"
	"github.com/abhisek/linguist/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		var rows [][]string
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			rows = append(rows, []string{
				itoa(e.ID), e.Timestamp.Local().Format(timeLayout), e.Purpose,
				truncate(e.Model, 28), itoa(e.InputTokens), itoa(e.OutputTokens),
				itoa(e.LatencyMs), ok,
			})
		}
		if len(rows) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}
		printTable([]string{"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK"}, rows)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		status := "ok"
		if !e.Success {
			status = "failed: " + e.ErrorMessage
		}
		printTable([]string{"Field", "Value"}, [][]string{
			{"Time", e.Timestamp.Local().Format(timeLayout)},
			{"Backend", e.Provider + " / " + e.Model},
			{"Purpose", e.Purpose},
			{"Tokens", fmt.Sprintf("%d in, %d out", e.InputTokens, e.OutputTokens)},
			{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
			{"Status", status},
		})

		for _, part := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Printf("\n── %s %s\n", part.title, strings.Repeat("─", 50-len(part.title)))
			if part.body == "" {
				fmt.Println("(not captured)")
				continue
			}
			fmt.Println(part.body)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		var rows [][]string
		for _, u := range usageBy(events, func(e store.LLMRequestEvent) string { return e.Purpose }) {
			rows = append(rows, []string{
				u.Key, itoa(u.Calls), itoa(u.InputTokens), itoa(u.OutputTokens), itoa(u.AvgLatencyMs),
			})
		}
		fmt.Println("Usage by purpose")
		printTable([]string{"Purpose", "Calls", "Input", "Output", "Avg ms"}, rows)

		rows = rows[:0]
		var total float64
		var unpriced []string
		for _, u := range usageBy(events, func(e store.LLMRequestEvent) string { return e.Model }) {
			cost := "?"
			if c := llm.LookupCost(u.Key); c != nil {
				usd := c.Cost(u.InputTokens, u.OutputTokens)
				total += usd
				cost = formatCost(usd)
			} else {
				unpriced = append(unpriced, u.Key)
			}
			rows = append(rows, []string{truncate(u.Key, 32), itoa(u.Calls), cost})
		}
		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		rows = append(rows, []string{label, itoa(len(events)), formatCost(total)})

		fmt.Println("\nEstimated cost (USD)")
		printTable([]string{"Model", "Calls", "Cost"}, rows)
		if len(unpriced) > 0 {
			fmt.Printf("No pricing for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

// usage is the token total of one group of events.
type usage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// usageBy groups events by key, in order of first appearance.
func usageBy(events []store.LLMRequestEvent, key func(store.LLMRequestEvent) string) []usage {
	var out []usage
	index := map[string]int{}
	var latency []int64
	for _, e := range events {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, usage{Key: k})
			latency = append(latency, 0)
		}
		out[i].Calls++
		out[i].InputTokens += e.InputTokens
		out[i].OutputTokens += e.OutputTokens
		latency[i] += e.LatencyMs
	}
	for i := range out {
		out[i].AvgLatencyMs = latency[i] / int64(out[i].Calls)
	}
	return out
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show this purpose (e.g. lesson-questions)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
