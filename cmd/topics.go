package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"advisor/internal/advisor"
)

// topicsCmd lists the preset topics and their canned questions.
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List preset topics and their canned questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Topic", "Question"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, topic := range advisor.Topics() {
			questions, err := advisor.TopicQuestions(topic)
			if err != nil {
				return err
			}
			for _, q := range questions {
				table.Append([]string{topic, q})
			}
		}

		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
