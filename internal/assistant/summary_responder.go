package assistant

import "context"

// SummaryResponder answers every question with the cycle context itself.
// Used when no generation backend is configured.
type SummaryResponder struct{}

func (SummaryResponder) Respond(_ context.Context, cycleContext string, _ string) (string, error) {
	return cycleContext, nil
}
