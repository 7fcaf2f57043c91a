package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remitfair/corridor-quote-service/internal/dto"
	"github.com/remitfair/corridor-quote-service/internal/money"
	"github.com/remitfair/corridor-quote-service/internal/quote"
	"github.com/remitfair/corridor-quote-service/internal/service"
)

type QuoteHandler struct {
	svc *service.QuoteService
}

func NewQuoteHandler(svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	result, err := h.svc.GetQuote(c.Request.Context(), req.SrcCountry, req.DstCountry, req.Rail, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrCorridorNotFound) || errors.Is(err, service.ErrRailNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, buildQuoteResponse(result))
}

func buildQuoteResponse(r *service.QuoteResult) dto.QuoteResponse {
	q := r.Quote
	srcCcy := r.Corridor.SrcCurrency
	dstCcy := r.Corridor.DstCurrency

	resp := dto.QuoteResponse{
		SrcCountry:       r.Corridor.SrcCountry,
		DstCountry:       r.Corridor.DstCountry,
		SrcCurrency:      srcCcy,
		DstCurrency:      dstCcy,
		Rail:             q.Rail,
		Amount:           r.Amount,
		FixedFee:         q.FixedFee,
		VariableFee:      q.VariableFee,
		TotalFeesSrc:     q.TotalFeesSrc,
		FXSpreadBps:      q.FXSpreadBps,
		FXSpreadCostSrc:  q.FXSpreadCostSrc,
		RateMid:          q.RateMid,
		RateCustomer:     q.RateCustomer,
		FXPrincipal:      q.FXPrincipal,
		ReceivedDst:      q.ReceivedDst,
		FXStatus:         string(q.FXStatus),
		EstDeliveryHours: q.EstDeliveryHours,
		SendLimitMin:     q.SendLimitMin,
		SendLimitMax:     q.SendLimitMax,
		Warnings:         r.Warnings,
		Explanation:      r.Explanation,
		Display: dto.QuoteDisplay{
			FixedFee:     money.Format(q.FixedFee, srcCcy),
			VariableFee:  money.Format(q.VariableFee, srcCcy),
			TotalFees:    money.Format(q.TotalFeesSrc, srcCcy),
			FXPrincipal:  money.Format(q.FXPrincipal, srcCcy),
			FXSpreadCost: money.Format(q.FXSpreadCostSrc, srcCcy),
			RateMid:      money.FormatRate(q.RateMid),
			RateCustomer: money.FormatRate(q.RateCustomer),
		},
	}

	if q.FXStatus != quote.FXUnquotable && q.ReceivedDst != nil {
		resp.Display.ReceivedDst = money.Format(*q.ReceivedDst, dstCcy)
	}
	return resp
}
