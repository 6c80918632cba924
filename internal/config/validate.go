package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration before any service is started. A
// missing credential is a hard startup failure: the process must not
// begin serving turns it cannot complete.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case "groq", "gemini":
	case "":
		return errors.New("provider.name is required")
	default:
		return fmt.Errorf("unknown provider %q (expected \"groq\" or \"gemini\")", c.Provider.Name)
	}

	if c.Provider.APIKey == "" {
		return errors.New("provider.api_key is required (set GROQ_API_KEY or GEMINI_API_KEY)")
	}
	if c.Provider.PlannerModel == "" {
		return errors.New("provider.planner_model is required")
	}
	if c.Provider.WriterModel == "" {
		return errors.New("provider.writer_model is required")
	}

	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}

	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path is required when history.enabled is true")
	}

	return nil
}
