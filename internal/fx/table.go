// Package fx holds the mid-market rate table. The table is built once from
// catalog data and never mutated, so lookups are safe from any goroutine.
package fx

import "github.com/remitfair/corridor-quote-service/internal/model"

type pair struct {
	src string
	dst string
}

// Table maps ordered currency pairs to mid-market rates.
type Table struct {
	rates map[pair]float64
}

// NewTable builds a rate table from mid-rate records. Later duplicates of a
// pair win, matching load order from the catalog source.
func NewTable(rates []model.MidRate) *Table {
	m := make(map[pair]float64, len(rates))
	for _, r := range rates {
		m[pair{src: r.SrcCurrency, dst: r.DstCurrency}] = r.Rate
	}
	return &Table{rates: m}
}

// Lookup resolves the mid-market rate for (src, dst). The second return is
// false when no rate is quoted for the pair; a missing pair is a defined
// "unquotable" state, never an error.
func (t *Table) Lookup(src, dst string) (float64, bool) {
	rate, ok := t.rates[pair{src: src, dst: dst}]
	return rate, ok
}

// Len reports the number of quoted pairs.
func (t *Table) Len() int {
	return len(t.rates)
}
