package explain

import (
	"context"
	"strings"
	"text/template"

	"github.com/remitfair/corridor-quote-service/internal/money"
)

const explanationTemplate = `Sending {{money .Amount .SrcCurrency}} from {{.SrcCountry}} to {{.DstCountry}} via {{.Rail}} costs {{money .TotalFees .SrcCurrency}} in fees ({{money .FixedFee .SrcCurrency}} fixed + {{money .VariableFee .SrcCurrency}} variable).
{{- if eq .FXStatus "CONVERTED"}} The remaining {{money .Principal .SrcCurrency}} converts at {{rate .RateCustomer}} ({{.SpreadBps}} bps below the {{rate .RateMid}} mid-market rate), so the recipient receives about {{money .Received .DstCurrency}}.
{{- else if eq .FXStatus "SAME_CURRENCY"}} No currency conversion is needed, so the recipient receives {{money .Received .DstCurrency}} with no FX spread charged.
{{- else}} No exchange rate is currently quoted for {{.SrcCurrency}} to {{.DstCurrency}}, so the received amount cannot be estimated.
{{- end}} Estimated delivery: ~{{.DeliveryHours}}h.`

// TemplateExplainer renders a fixed-form explanation locally. Deterministic:
// the same input always produces the same text.
type TemplateExplainer struct {
	tmpl *template.Template
}

func NewTemplateExplainer() *TemplateExplainer {
	tmpl := template.Must(template.New("explanation").Funcs(template.FuncMap{
		"money": money.Format,
		"rate":  money.FormatRate,
	}).Parse(explanationTemplate))
	return &TemplateExplainer{tmpl: tmpl}
}

func (e *TemplateExplainer) Explain(_ context.Context, in Input) (string, error) {
	data := struct {
		SrcCountry, DstCountry   string
		SrcCurrency, DstCurrency string
		Rail                     string
		Amount                   float64
		FixedFee, VariableFee    float64
		TotalFees, Principal     float64
		RateMid, RateCustomer    float64
		SpreadBps                int
		Received                 float64
		FXStatus                 string
		DeliveryHours            int
	}{
		SrcCountry:    in.Corridor.SrcCountry,
		DstCountry:    in.Corridor.DstCountry,
		SrcCurrency:   in.Corridor.SrcCurrency,
		DstCurrency:   in.Corridor.DstCurrency,
		Rail:          in.Quote.Rail,
		Amount:        in.Amount,
		FixedFee:      in.Quote.FixedFee,
		VariableFee:   in.Quote.VariableFee,
		TotalFees:     in.Quote.TotalFeesSrc,
		Principal:     in.Quote.FXPrincipal,
		RateMid:       in.Quote.RateMid,
		RateCustomer:  in.Quote.RateCustomer,
		SpreadBps:     in.Quote.FXSpreadBps,
		FXStatus:      string(in.Quote.FXStatus),
		DeliveryHours: in.Quote.EstDeliveryHours,
	}
	if in.Quote.ReceivedDst != nil {
		data.Received = *in.Quote.ReceivedDst
	}

	var sb strings.Builder
	if err := e.tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
