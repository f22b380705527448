package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// logCmd records one activity from free text, end to end: extract, resolve,
// reconcile, save.
var logCmd = &cobra.Command{
	Use:   "log <text>",
	Short: "Record an activity described in natural language",
	Long: `Record an activity described in natural language, for example:

  tomatolog log "中午12点锻炼了30分钟"
  tomatolog log "刚刚开了40分钟的会"

The text is sent to the extraction model, the start time is resolved to
Beijing time, and the result is appended to the shared ledger.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		extractor, err := newExtractor()
		if err != nil {
			return err
		}
		st, err := newLedgerStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		candidate, err := extractor.Extract(cmd.Context(), text, nil)
		if err != nil {
			return fmt.Errorf("could not understand %q: %w", text, err)
		}

		fmt.Println(newReconciler(st).LogActivity(candidate))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
