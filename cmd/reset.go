package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/linguist/internal/profiles"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all profiles and their statistics",
	Long:  "Delete the stored profile set. The default profiles are created again on the next start.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("This deletes every profile and its statistics. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

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

		if err := profiles.NewStore(backend).Reset(ctx); err != nil {
			return err
		}
		fmt.Println("Profiles reset.")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
