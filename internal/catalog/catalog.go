// Package catalog is the static configuration surface: corridors, rails, and
// the mid-market rate table. A Catalog is built once at startup from one of
// three sources (embedded seed data, YAML files on disk, postgres) and is
// immutable afterwards.
package catalog

import (
	"fmt"
	"sort"

	"github.com/remitfair/corridor-quote-service/internal/fx"
	"github.com/remitfair/corridor-quote-service/internal/model"
)

type corridorKey struct {
	src string
	dst string
}

type Catalog struct {
	source    string
	corridors []model.Corridor
	byKey     map[corridorKey]*model.Corridor
	rates     *fx.Table
}

// New validates the loaded records and builds the catalog. source names the
// origin of the data ("embedded", "file", "postgres") for health reporting.
func New(source string, corridors []model.Corridor, rates []model.MidRate) (*Catalog, error) {
	if len(corridors) == 0 {
		return nil, fmt.Errorf("catalog %s: no corridors", source)
	}

	byKey := make(map[corridorKey]*model.Corridor, len(corridors))
	for i := range corridors {
		c := &corridors[i]
		if c.SrcCountry == "" || c.DstCountry == "" || c.SrcCurrency == "" || c.DstCurrency == "" {
			return nil, fmt.Errorf("catalog %s: corridor %d has empty country or currency", source, i)
		}
		key := corridorKey{src: c.SrcCountry, dst: c.DstCountry}
		if _, dup := byKey[key]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate corridor %s -> %s", source, c.SrcCountry, c.DstCountry)
		}
		if len(c.Rails) == 0 {
			return nil, fmt.Errorf("catalog %s: corridor %s -> %s has no rails", source, c.SrcCountry, c.DstCountry)
		}
		for _, r := range c.Rails {
			if err := validateRail(r); err != nil {
				return nil, fmt.Errorf("catalog %s: corridor %s -> %s: %w", source, c.SrcCountry, c.DstCountry, err)
			}
		}
		byKey[key] = c
	}

	for _, r := range rates {
		if r.SrcCurrency == "" || r.DstCurrency == "" {
			return nil, fmt.Errorf("catalog %s: rate with empty currency", source)
		}
		if r.Rate <= 0 {
			return nil, fmt.Errorf("catalog %s: non-positive rate %v for %s -> %s", source, r.Rate, r.SrcCurrency, r.DstCurrency)
		}
	}

	return &Catalog{
		source:    source,
		corridors: corridors,
		byKey:     byKey,
		rates:     fx.NewTable(rates),
	}, nil
}

func validateRail(r model.Rail) error {
	switch {
	case r.Name == "":
		return fmt.Errorf("rail with empty name")
	case r.FixedFee < 0:
		return fmt.Errorf("rail %s: negative fixed fee", r.Name)
	case r.VariableFeePct < 0:
		return fmt.Errorf("rail %s: negative variable fee pct", r.Name)
	case r.FXSpreadBps < 0:
		return fmt.Errorf("rail %s: negative fx spread", r.Name)
	case r.EstDeliveryHours < 0:
		return fmt.Errorf("rail %s: negative delivery estimate", r.Name)
	case r.SendLimitMin < 0 || r.SendLimitMax < r.SendLimitMin:
		return fmt.Errorf("rail %s: invalid send limits", r.Name)
	}
	return nil
}

// Source reports where this catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Corridors returns all corridors in load order. Callers must not mutate
// the returned slice.
func (c *Catalog) Corridors() []model.Corridor {
	return c.corridors
}

// FindCorridor resolves a corridor by its (source country, destination
// country) key, or nil when the pair is not served.
func (c *Catalog) FindCorridor(srcCountry, dstCountry string) *model.Corridor {
	return c.byKey[corridorKey{src: srcCountry, dst: dstCountry}]
}

// Rates returns the mid-market rate table.
func (c *Catalog) Rates() *fx.Table {
	return c.rates
}

// SourceCountries lists the distinct source countries, sorted.
func (c *Catalog) SourceCountries() []string {
	seen := make(map[string]bool)
	var out []string
	for _, corr := range c.corridors {
		if !seen[corr.SrcCountry] {
			seen[corr.SrcCountry] = true
			out = append(out, corr.SrcCountry)
		}
	}
	sort.Strings(out)
	return out
}

// Destinations lists the destination countries served from srcCountry,
// sorted.
func (c *Catalog) Destinations(srcCountry string) []string {
	var out []string
	for _, corr := range c.corridors {
		if corr.SrcCountry == srcCountry {
			out = append(out, corr.DstCountry)
		}
	}
	sort.Strings(out)
	return out
}
