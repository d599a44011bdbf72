// Package extractor turns a free-text app description into structured
// requirements. Providers are tried in order; the first success wins and the
// final rule-based tier cannot fail, so extraction as a whole never does.
package extractor

import (
	"context"

	"appdesigner/internal/models"
)

// Provider is one tier of the extraction chain. Extract either returns a
// requirements value decoded from the provider's response or an error that
// sends the chain to the next tier.
type Provider interface {
	Name() string
	Extract(ctx context.Context, prompt string, prefs models.Preferences) (*models.Requirements, error)
}
