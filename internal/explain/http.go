package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPExplainer asks an external text-generation service for an
// explanation. Every call is bounded by the configured timeout; callers
// fall back to the template explainer on any error.
type HTTPExplainer struct {
	url    string
	client *http.Client
}

func NewHTTPExplainer(url string, timeout time.Duration) *HTTPExplainer {
	return &HTTPExplainer{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type explainRequest struct {
	SrcCountry      string   `json:"src_country"`
	DstCountry      string   `json:"dst_country"`
	SrcCurrency     string   `json:"src_currency"`
	DstCurrency     string   `json:"dst_currency"`
	Rail            string   `json:"rail"`
	Amount          float64  `json:"amount"`
	TotalFeesSrc    float64  `json:"total_fees_src"`
	FXSpreadBps     int      `json:"fx_spread_bps"`
	RateMid         float64  `json:"rate_mid"`
	RateCustomer    float64  `json:"rate_customer"`
	ReceivedDst     *float64 `json:"received_dst"`
	FXStatus        string   `json:"fx_status"`
	EstDeliveryHrs  int      `json:"est_delivery_hours"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

func (e *HTTPExplainer) Explain(ctx context.Context, in Input) (string, error) {
	payload := explainRequest{
		SrcCountry:     in.Corridor.SrcCountry,
		DstCountry:     in.Corridor.DstCountry,
		SrcCurrency:    in.Corridor.SrcCurrency,
		DstCurrency:    in.Corridor.DstCurrency,
		Rail:           in.Quote.Rail,
		Amount:         in.Amount,
		TotalFeesSrc:   in.Quote.TotalFeesSrc,
		FXSpreadBps:    in.Quote.FXSpreadBps,
		RateMid:        in.Quote.RateMid,
		RateCustomer:   in.Quote.RateCustomer,
		ReceivedDst:    in.Quote.ReceivedDst,
		FXStatus:       string(in.Quote.FXStatus),
		EstDeliveryHrs: in.Quote.EstDeliveryHours,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal explain request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build explain request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call explain service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("explain service returned %d", resp.StatusCode)
	}

	var out explainResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode explain response: %w", err)
	}
	if out.Explanation == "" {
		return "", fmt.Errorf("explain service returned empty explanation")
	}
	return out.Explanation, nil
}
