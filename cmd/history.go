package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"advisor/internal/textutil"
)

var historyLimit int

// historyCmd lists recorded chat turns, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded chat turns",
	Long:  `Displays past turns recorded to the local history database.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		if appInstance.TurnStore == nil {
			return fmt.Errorf("history is disabled (set history.enabled in config.yaml)")
		}

		turns, err := appInstance.TurnStore.ListTurns(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("error listing history: %w", err)
		}

		if len(turns) == 0 {
			fmt.Println("No turns recorded yet.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"When", "Category", "Question", "Advice"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, t := range turns {
			table.Append([]string{
				t.CreatedAt.Format("2006-01-02 15:04:05"),
				t.Category,
				textutil.FirstSentence(t.Question, 60),
				textutil.FirstSentence(t.Advice, 80),
			})
		}

		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of turns to show")
}
