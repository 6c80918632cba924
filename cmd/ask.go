package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"advisor/internal/advisor"
)

var askTopic string

// askCmd runs a single chat turn from the command line.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask one investment question",
	Long: `Runs a single turn: generates supporting reasons for the question,
classifies it, and prints category-tailored advice. With --topic, a
random canned question for that topic is used instead of an argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		var question string
		switch {
		case askTopic != "":
			question, err = advisor.RandomQuestion(askTopic)
			if err != nil {
				return err
			}
			fmt.Printf("Question (%s): %s\n\n", askTopic, question)
		case len(args) == 1 && args[0] != "":
			question = args[0]
		default:
			return fmt.Errorf("provide a question or use --topic")
		}

		turn, err := appInstance.AdvisorService.HandleTurn(cmd.Context(), question)
		if err != nil {
			return fmt.Errorf("turn failed: %w", err)
		}

		fmt.Println(color.CyanString("Investment Reasons"))
		fmt.Println(turn.Reasons)
		fmt.Println()
		fmt.Println(color.GreenString("Recommendation (%s)", turn.Category))
		fmt.Println(turn.Advice)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVar(&askTopic, "topic", "", "Pick a random canned question for this topic (Funds, Bonds, Foreign Currency, Macro)")
}
