package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sessionsCmd prints the recorded sessions, most of what the companion clock
// UI shows, without leaving the terminal.
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded activity sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newLedgerStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		ledger, err := st.Load()
		if err != nil {
			return err
		}
		if len(ledger.Sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		for _, s := range ledger.Sessions {
			title := "自由计时"
			if s.TaskID != nil {
				if t := ledger.TaskByID(*s.TaskID); t != nil {
					title = t.Title
				}
			}
			fmt.Printf("#%-4d %s  %s -> %s  %s (%s)\n",
				s.ID, title, s.StartedAt, s.EndedAt, formatDuration(s.DurationSec), s.Mode)
		}
		return nil
	},
}

// formatDuration renders seconds as a readable X小时Y分钟 string.
func formatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%d小时%d分钟", hours, minutes)
	}
	return fmt.Sprintf("%d分钟", minutes)
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
