// Package explain produces human-readable summaries of a quote. The
// template explainer is deterministic and always available; the HTTP
// explainer calls an external text service and is expected to fail
// sometimes, so callers keep the template as a fallback. Explanations are
// presentation only and never influence quote numbers.
package explain

import (
	"context"

	"github.com/remitfair/corridor-quote-service/internal/model"
	"github.com/remitfair/corridor-quote-service/internal/quote"
)

// Input carries everything an explainer may mention.
type Input struct {
	Corridor model.Corridor
	Amount   float64
	Quote    quote.Quote
}

type Explainer interface {
	Explain(ctx context.Context, in Input) (string, error)
}
