package dto

// QuoteResponse carries the raw engine output plus display-rounded strings.
// Numeric fields are unrounded; rounding to two decimals happens only in
// the Display block.
type QuoteResponse struct {
	SrcCountry  string `json:"src_country"`
	DstCountry  string `json:"dst_country"`
	SrcCurrency string `json:"src_currency"`
	DstCurrency string `json:"dst_currency"`
	Rail        string `json:"rail"`

	Amount           float64  `json:"amount"`
	FixedFee         float64  `json:"fixed_fee"`
	VariableFee      float64  `json:"variable_fee"`
	TotalFeesSrc     float64  `json:"total_fees_src"`
	FXSpreadBps      int      `json:"fx_spread_bps"`
	FXSpreadCostSrc  float64  `json:"fx_spread_cost_src"`
	RateMid          float64  `json:"rate_mid"`
	RateCustomer     float64  `json:"rate_customer"`
	FXPrincipal      float64  `json:"fx_principal"`
	ReceivedDst      *float64 `json:"received_dst"`
	FXStatus         string   `json:"fx_status"`
	EstDeliveryHours int      `json:"est_delivery_hours"`
	SendLimitMin     float64  `json:"send_limit_min"`
	SendLimitMax     float64  `json:"send_limit_max"`

	Display     QuoteDisplay `json:"display"`
	Warnings    []string     `json:"warnings,omitempty"`
	Explanation string       `json:"explanation,omitempty"`
}

// QuoteDisplay holds presentation strings: two-decimal half-up money,
// four-decimal rates.
type QuoteDisplay struct {
	FixedFee     string `json:"fixed_fee"`
	VariableFee  string `json:"variable_fee"`
	TotalFees    string `json:"total_fees"`
	FXPrincipal  string `json:"fx_principal"`
	FXSpreadCost string `json:"fx_spread_cost"`
	RateMid      string `json:"rate_mid"`
	RateCustomer string `json:"rate_customer"`
	ReceivedDst  string `json:"received_dst,omitempty"`
}

type CorridorResponse struct {
	SrcCountry  string         `json:"src_country"`
	DstCountry  string         `json:"dst_country"`
	SrcCurrency string         `json:"src_currency"`
	DstCurrency string         `json:"dst_currency"`
	Rails       []RailResponse `json:"rails"`
}

type RailResponse struct {
	Name             string  `json:"name"`
	FixedFee         float64 `json:"fixed_fee"`
	VariableFeePct   float64 `json:"variable_fee_pct"`
	FXSpreadBps      int     `json:"fx_spread_bps"`
	EstDeliveryHours int     `json:"est_delivery_hours"`
	SendLimitMin     float64 `json:"send_limit_min"`
	SendLimitMax     float64 `json:"send_limit_max"`
}

type CorridorListResponse struct {
	Corridors []CorridorResponse `json:"corridors"`
	Total     int                `json:"total"`
}

type SourceCountriesResponse struct {
	Sources []string `json:"sources"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
