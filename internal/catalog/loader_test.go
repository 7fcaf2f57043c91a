package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCorridorsYAML = `corridors:
  - src_country: "United States"
    dst_country: "Kenya"
    src_currency: USD
    dst_currency: KES
    rails:
      - name: "Mobile Money"
        fixed_fee: 1.49
        variable_fee_pct: 0.008
        fx_spread_bps: 110
        est_delivery_hours: 1
        send_limit_min: 5
        send_limit_max: 2000
`

const testRatesYAML = `rates:
  - src_currency: USD
    dst_currency: KES
    rate: 129.5
`

func writeCatalogDir(t *testing.T, corridors, rates string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corridors.yaml"), []byte(corridors), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rates.yaml"), []byte(rates), 0o644))
	return dir
}

func TestLoadDir(t *testing.T) {
	t.Run("happy: loads yaml files", func(t *testing.T) {
		dir := writeCatalogDir(t, testCorridorsYAML, testRatesYAML)

		cat, err := LoadDir(dir)
		require.NoError(t, err)

		assert.Equal(t, "file", cat.Source())
		kenya := cat.FindCorridor("United States", "Kenya")
		require.NotNil(t, kenya)
		require.Len(t, kenya.Rails, 1)
		assert.Equal(t, "Mobile Money", kenya.Rails[0].Name)
		assert.Equal(t, 110, kenya.Rails[0].FXSpreadBps)

		rate, ok := cat.Rates().Lookup("USD", "KES")
		assert.True(t, ok)
		assert.Equal(t, 129.5, rate)
	})

	t.Run("bad: missing files", func(t *testing.T) {
		_, err := LoadDir(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("bad: malformed yaml", func(t *testing.T) {
		dir := writeCatalogDir(t, "corridors: [", testRatesYAML)
		_, err := LoadDir(dir)
		assert.ErrorContains(t, err, "parse corridors")
	})

	t.Run("bad: invalid records rejected", func(t *testing.T) {
		broken := `corridors:
  - src_country: "United States"
    dst_country: "Kenya"
    src_currency: USD
    dst_currency: KES
    rails: []
`
		dir := writeCatalogDir(t, broken, testRatesYAML)
		_, err := LoadDir(dir)
		assert.ErrorContains(t, err, "no rails")
	})
}
