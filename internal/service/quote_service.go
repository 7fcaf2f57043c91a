package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/remitfair/corridor-quote-service/internal/catalog"
	"github.com/remitfair/corridor-quote-service/internal/explain"
	"github.com/remitfair/corridor-quote-service/internal/model"
	"github.com/remitfair/corridor-quote-service/internal/quote"
)

// QuoteService resolves the corridor and rail for a request, runs the quote
// engine, and attaches warnings and an explanation. Amount positivity is
// enforced at the HTTP binding boundary; by the time a request reaches this
// service the amount is > 0.
type QuoteService struct {
	catalog   *catalog.Catalog
	fallback  explain.Explainer
	generator explain.Explainer
}

// NewQuoteService wires the service. generator may be nil, in which case all
// explanations come from fallback. fallback must never be nil.
func NewQuoteService(cat *catalog.Catalog, fallback, generator explain.Explainer) *QuoteService {
	return &QuoteService{catalog: cat, fallback: fallback, generator: generator}
}

// QuoteResult is a computed quote plus its presentation extras.
type QuoteResult struct {
	Corridor    model.Corridor
	Amount      float64
	Quote       quote.Quote
	Warnings    []string
	Explanation string
}

// GetQuote computes a quote for sending amount from srcCountry to
// dstCountry over railName. Limit breaches produce warnings, never errors;
// an unquotable currency pair is a defined quote outcome, not a failure.
func (s *QuoteService) GetQuote(ctx context.Context, srcCountry, dstCountry, railName string, amount float64) (*QuoteResult, error) {
	corridor := s.catalog.FindCorridor(srcCountry, dstCountry)
	if corridor == nil {
		return nil, fmt.Errorf("%w: %s -> %s", ErrCorridorNotFound, srcCountry, dstCountry)
	}

	rail := corridor.FindRail(railName)
	if rail == nil {
		return nil, fmt.Errorf("%w: %q on %s -> %s", ErrRailNotFound, railName, srcCountry, dstCountry)
	}

	q := quote.Compute(amount, *rail, corridor.SrcCurrency, corridor.DstCurrency, s.catalog.Rates())

	result := &QuoteResult{
		Corridor: *corridor,
		Amount:   amount,
		Quote:    q,
		Warnings: limitWarnings(amount, *rail, corridor.SrcCurrency),
	}
	result.Explanation = s.explainQuote(ctx, explain.Input{
		Corridor: *corridor,
		Amount:   amount,
		Quote:    q,
	})
	return result, nil
}

// limitWarnings checks the rail's advisory send limits. Out-of-range
// amounts still get a full quote.
func limitWarnings(amount float64, rail model.Rail, currency string) []string {
	if amount < rail.SendLimitMin || amount > rail.SendLimitMax {
		return []string{fmt.Sprintf("typical limits for %s: %.0f-%.0f %s",
			rail.Name, rail.SendLimitMin, rail.SendLimitMax, currency)}
	}
	return nil
}

func (s *QuoteService) explainQuote(ctx context.Context, in explain.Input) string {
	if s.generator != nil {
		text, err := s.generator.Explain(ctx, in)
		if err == nil {
			return text
		}
		log.Warn().Err(err).Msg("explanation generator failed, using template fallback")
	}

	text, err := s.fallback.Explain(ctx, in)
	if err != nil {
		// The template explainer only fails on a broken template, which
		// is a programming error; the quote itself is still good.
		log.Error().Err(err).Msg("template explanation failed")
		return ""
	}
	return text
}
