package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remitfair/corridor-quote-service/internal/catalog"
	"github.com/remitfair/corridor-quote-service/internal/dto"
	"github.com/remitfair/corridor-quote-service/internal/explain"
	"github.com/remitfair/corridor-quote-service/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cat, err := catalog.LoadEmbedded()
	require.NoError(t, err)

	quoteService := service.NewQuoteService(cat, explain.NewTemplateExplainer(), nil)
	corridorService := service.NewCorridorService(cat)

	quoteHandler := NewQuoteHandler(quoteService)
	corridorHandler := NewCorridorHandler(corridorService)
	healthHandler := NewHealthHandler(cat, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", healthHandler.Health)
	api := router.Group("/api/v1")
	api.POST("/quotes", quoteHandler.Create)
	api.GET("/corridors", corridorHandler.List)
	api.GET("/corridors/sources", corridorHandler.Sources)

	return router
}

func postQuote(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/quotes", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_Create(t *testing.T) {
	router := setupRouter(t)

	t.Run("happy: USD to CAD aggregator quote", func(t *testing.T) {
		w := postQuote(t, router, dto.QuoteRequest{
			SrcCountry: "United States",
			DstCountry: "Canada",
			Rail:       "Fintech Aggregator",
			Amount:     1000,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.QuoteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, "CONVERTED", resp.FXStatus)
		assert.InDelta(t, 10.00, resp.VariableFee, 1e-9)
		assert.InDelta(t, 11.99, resp.TotalFeesSrc, 1e-9)
		assert.InDelta(t, 988.01, resp.FXPrincipal, 1e-9)
		assert.Equal(t, 1.30, resp.RateMid)
		assert.InDelta(t, 1.2909, resp.RateCustomer, 1e-9)
		require.NotNil(t, resp.ReceivedDst)
		assert.InDelta(t, 988.01*1.2909, *resp.ReceivedDst, 1e-6)

		assert.Equal(t, "$1.99 USD", resp.Display.FixedFee)
		assert.Equal(t, "$11.99 USD", resp.Display.TotalFees)
		assert.Equal(t, "1.2909", resp.Display.RateCustomer)
		assert.Equal(t, "1275.42 CAD", resp.Display.ReceivedDst)
		assert.NotEmpty(t, resp.Explanation)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("happy: same-currency corridor has no spread cost", func(t *testing.T) {
		w := postQuote(t, router, dto.QuoteRequest{
			SrcCountry: "United States",
			DstCountry: "Ecuador",
			Rail:       "SWIFT",
			Amount:     500,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.QuoteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, "SAME_CURRENCY", resp.FXStatus)
		assert.Equal(t, 1.00, resp.RateCustomer)
		assert.Zero(t, resp.FXSpreadCostSrc)
	})

	t.Run("happy: fees exceeding amount floor at zero", func(t *testing.T) {
		w := postQuote(t, router, dto.QuoteRequest{
			SrcCountry: "United States",
			DstCountry: "Canada",
			Rail:       "SWIFT",
			Amount:     5,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.QuoteResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Zero(t, resp.FXPrincipal)
		require.NotNil(t, resp.ReceivedDst)
		assert.Zero(t, *resp.ReceivedDst)
		assert.NotEmpty(t, resp.Warnings, "below the SWIFT advisory minimum")
	})

	t.Run("bad: zero amount rejected at the boundary", func(t *testing.T) {
		w := postQuote(t, router, map[string]any{
			"src_country": "United States",
			"dst_country": "Canada",
			"rail":        "SWIFT",
			"amount":      0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: negative amount rejected at the boundary", func(t *testing.T) {
		w := postQuote(t, router, map[string]any{
			"src_country": "United States",
			"dst_country": "Canada",
			"rail":        "SWIFT",
			"amount":      -100,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/quotes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: unknown corridor", func(t *testing.T) {
		w := postQuote(t, router, dto.QuoteRequest{
			SrcCountry: "United States",
			DstCountry: "Atlantis",
			Rail:       "SWIFT",
			Amount:     100,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad: unknown rail", func(t *testing.T) {
		w := postQuote(t, router, dto.QuoteRequest{
			SrcCountry: "United States",
			DstCountry: "Canada",
			Rail:       "Telegraph",
			Amount:     100,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCorridorHandler(t *testing.T) {
	router := setupRouter(t)

	t.Run("happy: list all corridors", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/corridors", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.CorridorListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 21, resp.Total)
		assert.Len(t, resp.Corridors[0].Rails, 3)
	})

	t.Run("happy: filter by source country", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/corridors?src=France", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.CorridorListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Zero(t, resp.Total)
	})

	t.Run("happy: source countries", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/corridors/sources", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.SourceCountriesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"United States"}, resp.Sources)
	})
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "embedded", body["catalog_source"])
	assert.EqualValues(t, 21, body["corridors"])
	assert.EqualValues(t, 19, body["quoted_pairs"])
}
