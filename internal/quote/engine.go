// Package quote implements the fee/FX quote computation for a single
// transfer. Compute is a pure function over the rail parameters and the rate
// table: no I/O, no mutation, no rounding (display rounding is the caller's
// concern).
package quote

import "github.com/remitfair/corridor-quote-service/internal/model"

// RateSource resolves a mid-market rate for an ordered currency pair.
// The bool is false when the pair is not quoted.
type RateSource interface {
	Lookup(srcCurrency, dstCurrency string) (float64, bool)
}

// FXStatus tags the conversion outcome of a quote. "No rate available" and
// "no conversion needed" both leave spread cost at zero, so the tag is the
// only way to tell them apart.
type FXStatus string

const (
	// FXConverted means a known rate with the rail's spread applied.
	FXConverted FXStatus = "CONVERTED"
	// FXSameCurrency means source and destination currency match; the
	// mid rate passes through and no spread is charged.
	FXSameCurrency FXStatus = "SAME_CURRENCY"
	// FXUnquotable means no mid-market rate exists for the pair. Rate
	// fields are zero sentinels and ReceivedDst is nil.
	FXUnquotable FXStatus = "UNQUOTABLE"
)

// Quote is the computed breakdown for one transfer. All monetary fields are
// in the source currency except ReceivedDst, which is in the destination
// currency and nil when the pair is unquotable.
type Quote struct {
	Rail             string
	FixedFee         float64
	VariableFee      float64
	TotalFeesSrc     float64
	FXSpreadBps      int
	FXSpreadCostSrc  float64
	RateMid          float64
	RateCustomer     float64
	FXPrincipal      float64
	ReceivedDst      *float64
	FXStatus         FXStatus
	EstDeliveryHours int
	SendLimitMin     float64
	SendLimitMax     float64
}

// Compute produces the quote for sending amount over rail from srcCurrency
// to dstCurrency. Callers must reject non-positive amounts before calling;
// the function itself is total and never fails: fees larger than the amount
// clamp the principal at zero, and an unknown currency pair yields the
// FXUnquotable outcome instead of an error.
//
// Fee composition order is fixed: variable fee, then fixed fee, then the
// principal clamp, then FX resolution.
func Compute(amount float64, rail model.Rail, srcCurrency, dstCurrency string, rates RateSource) Quote {
	variableFee := amount * rail.VariableFeePct
	totalFees := variableFee + rail.FixedFee

	principal := amount - totalFees
	if principal < 0 {
		principal = 0
	}

	q := Quote{
		Rail:             rail.Name,
		FixedFee:         rail.FixedFee,
		VariableFee:      variableFee,
		TotalFeesSrc:     totalFees,
		FXSpreadBps:      rail.FXSpreadBps,
		FXPrincipal:      principal,
		EstDeliveryHours: rail.EstDeliveryHours,
		SendLimitMin:     rail.SendLimitMin,
		SendLimitMax:     rail.SendLimitMax,
	}

	midRate, ok := rates.Lookup(srcCurrency, dstCurrency)
	if !ok {
		q.FXStatus = FXUnquotable
		return q
	}

	q.RateMid = midRate
	if srcCurrency == dstCurrency {
		// No conversion happens, so the configured spread is not charged.
		q.FXStatus = FXSameCurrency
		q.RateCustomer = midRate
	} else {
		q.FXStatus = FXConverted
		q.RateCustomer = midRate * (1 - float64(rail.FXSpreadBps)/10000)
		q.FXSpreadCostSrc = principal * (midRate - q.RateCustomer)
	}

	received := principal * q.RateCustomer
	q.ReceivedDst = &received
	return q
}
