package checkers

import (
	"context"
	"errors"
)

// ProviderChecker reports whether the LLM provider is usable: either mock
// mode is on or an API key is configured. It never probes the network.
type ProviderChecker struct {
	apiKey   string
	mockMode bool
}

func NewProviderChecker(apiKey string, mockMode bool) *ProviderChecker {
	return &ProviderChecker{apiKey: apiKey, mockMode: mockMode}
}

func (c *ProviderChecker) Name() string { return "llm" }

func (c *ProviderChecker) Check(_ context.Context) error {
	if c.mockMode || c.apiKey != "" {
		return nil
	}
	return errors.New("provider credentials are not configured")
}
