package fx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remitfair/corridor-quote-service/internal/model"
)

func TestTableLookup(t *testing.T) {
	table := NewTable([]model.MidRate{
		{SrcCurrency: "USD", DstCurrency: "CAD", Rate: 1.30},
		{SrcCurrency: "USD", DstCurrency: "USD", Rate: 1.00},
	})

	rate, ok := table.Lookup("USD", "CAD")
	assert.True(t, ok)
	assert.Equal(t, 1.30, rate)

	// Pairs are ordered: the reverse direction is not implied.
	_, ok = table.Lookup("CAD", "USD")
	assert.False(t, ok)

	rate, ok = table.Lookup("USD", "GBP")
	assert.False(t, ok)
	assert.Zero(t, rate)

	assert.Equal(t, 2, table.Len())
}

func TestTableDuplicatePairLastWins(t *testing.T) {
	table := NewTable([]model.MidRate{
		{SrcCurrency: "USD", DstCurrency: "MXN", Rate: 18.00},
		{SrcCurrency: "USD", DstCurrency: "MXN", Rate: 19.50},
	})

	rate, ok := table.Lookup("USD", "MXN")
	assert.True(t, ok)
	assert.Equal(t, 19.50, rate)
}
