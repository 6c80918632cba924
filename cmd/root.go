package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"advisor/internal/app"
	"advisor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "AI Investment Helper CLI",
	Long: `Advisor is an educational investment chatbot. Each question is answered
in two stages: a reasons generation pass and a category-tailored advice
pass, both served by a hosted chat-completion model.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// topics only reads the static presets, no app needed
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "topics" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		appInstance, err := app.NewApp(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check provider and history-store connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}
		defer appInstance.Close()

		fmt.Printf("Completion provider: %s (%s)\n",
			appInstance.CompletionService.Name(), appInstance.CompletionService.Status())

		if appInstance.TurnStore == nil {
			fmt.Println("History store: disabled")
			return nil
		}
		if err := appInstance.TurnStore.Ping(ctx); err != nil {
			return fmt.Errorf("history store ping failed: %w", err)
		}
		fmt.Println("History store: ok")
		return nil
	},
}
