package cmd

import (
	"fmt"
	"os"
	"text/tabwriter" // For aligned output

	"github.com/spf13/cobra"
)

// usageCmd shows accumulated token usage across all recorded calls.
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show total token usage",
	Long:  `Displays the sum of input and output tokens recorded for all model calls.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		if appInstance.UsageStore == nil {
			return fmt.Errorf("history is disabled, no usage is recorded")
		}

		in, out, err := appInstance.UsageStore.TotalUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read usage totals: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Input Tokens\tOutput Tokens\tTotal")
		fmt.Fprintf(w, "%d\t%d\t%d\n", in, out, in+out)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
