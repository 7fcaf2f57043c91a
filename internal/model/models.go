package model

// Rail is a payment method/network within a corridor. Fees are expressed in
// the corridor's source currency; the spread is in basis points off the
// mid-market rate. Send limits are advisory.
type Rail struct {
	Name             string  `json:"name" yaml:"name"`
	FixedFee         float64 `json:"fixed_fee" yaml:"fixed_fee"`
	VariableFeePct   float64 `json:"variable_fee_pct" yaml:"variable_fee_pct"`
	FXSpreadBps      int     `json:"fx_spread_bps" yaml:"fx_spread_bps"`
	EstDeliveryHours int     `json:"est_delivery_hours" yaml:"est_delivery_hours"`
	SendLimitMin     float64 `json:"send_limit_min" yaml:"send_limit_min"`
	SendLimitMax     float64 `json:"send_limit_max" yaml:"send_limit_max"`
}

// Corridor pairs a source country/currency with a destination
// country/currency and owns the rails available on that path. Uniquely
// identified by (SrcCountry, DstCountry).
type Corridor struct {
	SrcCountry  string `json:"src_country" yaml:"src_country"`
	DstCountry  string `json:"dst_country" yaml:"dst_country"`
	SrcCurrency string `json:"src_currency" yaml:"src_currency"`
	DstCurrency string `json:"dst_currency" yaml:"dst_currency"`
	Rails       []Rail `json:"rails" yaml:"rails"`
}

// FindRail returns the corridor rail with the given name, or nil.
func (c *Corridor) FindRail(name string) *Rail {
	for i := range c.Rails {
		if c.Rails[i].Name == name {
			return &c.Rails[i]
		}
	}
	return nil
}

// MidRate is one entry of the mid-market rate table: the reference exchange
// rate for an ordered currency pair before any spread is applied.
type MidRate struct {
	SrcCurrency string  `json:"src_currency" yaml:"src_currency"`
	DstCurrency string  `json:"dst_currency" yaml:"dst_currency"`
	Rate        float64 `json:"rate" yaml:"rate"`
}
