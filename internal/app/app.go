package app

import (
	"context"
	"fmt"

	"advisor/internal/advisor"
	"advisor/internal/config"
	"advisor/internal/services"
	"advisor/internal/store"

	log "github.com/sirupsen/logrus"
)

type App struct {
	Config            *config.Config
	CompletionService services.CompletionService

	// History stores are nil when history is disabled.
	TurnStore  store.TurnStore
	UsageStore store.UsageStore

	AdvisorService *advisor.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initHistoryStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initCompletionService(ctx); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	app.initAdvisorService()

	log.Println("Application initialization complete.")
	return app, nil
}

func (a *App) initHistoryStore(ctx context.Context) error {
	if !a.Config.History.Enabled {
		log.Println("History is disabled, turns will not be recorded.")
		return nil
	}
	s, err := store.NewSQLiteStore(ctx, a.Config.History.Path)
	if err != nil {
		return fmt.Errorf("init history store: %w", err)
	}
	a.TurnStore = s
	a.UsageStore = s
	return nil
}

func (a *App) initCompletionService(ctx context.Context) error {
	cfg := a.Config
	var completer services.CompletionService
	var err error

	switch cfg.Provider.Name {
	case "groq":
		completer, err = services.NewGroqProvider(cfg.Provider.APIKey, a.UsageStore)
		if err != nil {
			return fmt.Errorf("failed to initialize Groq completion provider: %w", err)
		}
	case "gemini":
		completer, err = services.NewGeminiProvider(ctx, cfg.Provider.APIKey, a.UsageStore)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini completion provider: %w", err)
		}
	default:
		return fmt.Errorf("unknown or unsupported completion provider configured: %s", cfg.Provider.Name)
	}

	if completer.Status() != services.ProviderStatusActive {
		return fmt.Errorf("completion provider %q is not usable (missing API key?)", cfg.Provider.Name)
	}
	a.CompletionService = completer
	return nil
}

func (a *App) initAdvisorService() {
	a.AdvisorService = advisor.NewService(
		a.CompletionService,
		a.TurnStore,
		a.Config.Provider.PlannerModel,
		a.Config.Provider.WriterModel,
	)
}

func (a *App) cleanupPartialInit() {
	if a.TurnStore != nil {
		if err := a.TurnStore.Close(); err != nil {
			log.Printf("Error closing history store: %v", err)
		}
	}
	if cs, ok := a.CompletionService.(interface{ Close() error }); ok && cs != nil {
		if err := cs.Close(); err != nil {
			log.Printf("Error closing CompletionService: %v", err)
		}
	}
}

// Close releases all resources held by the app.
func (a *App) Close() {
	a.cleanupPartialInit()
}
