package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remitfair/corridor-quote-service/internal/dto"
	"github.com/remitfair/corridor-quote-service/internal/model"
	"github.com/remitfair/corridor-quote-service/internal/service"
)

type CorridorHandler struct {
	svc *service.CorridorService
}

func NewCorridorHandler(svc *service.CorridorService) *CorridorHandler {
	return &CorridorHandler{svc: svc}
}

func (h *CorridorHandler) List(c *gin.Context) {
	corridors := h.svc.ListCorridors(c.Query("src"))

	resp := dto.CorridorListResponse{
		Corridors: make([]dto.CorridorResponse, len(corridors)),
		Total:     len(corridors),
	}
	for i, corr := range corridors {
		resp.Corridors[i] = buildCorridorResponse(corr)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CorridorHandler) Sources(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SourceCountriesResponse{
		Sources: h.svc.SourceCountries(),
	})
}

func buildCorridorResponse(corr model.Corridor) dto.CorridorResponse {
	rails := make([]dto.RailResponse, len(corr.Rails))
	for i, r := range corr.Rails {
		rails[i] = dto.RailResponse{
			Name:             r.Name,
			FixedFee:         r.FixedFee,
			VariableFeePct:   r.VariableFeePct,
			FXSpreadBps:      r.FXSpreadBps,
			EstDeliveryHours: r.EstDeliveryHours,
			SendLimitMin:     r.SendLimitMin,
			SendLimitMax:     r.SendLimitMax,
		}
	}
	return dto.CorridorResponse{
		SrcCountry:  corr.SrcCountry,
		DstCountry:  corr.DstCountry,
		SrcCurrency: corr.SrcCurrency,
		DstCurrency: corr.DstCurrency,
		Rails:       rails,
	}
}
