package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/remitfair/corridor-quote-service/internal/catalog"
)

type HealthHandler struct {
	catalog *catalog.Catalog
	pool    *pgxpool.Pool // nil unless the catalog source is postgres
}

func NewHealthHandler(cat *catalog.Catalog, pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{catalog: cat, pool: pool}
}

func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{
		"status":         "healthy",
		"catalog_source": h.catalog.Source(),
		"corridors":      len(h.catalog.Corridors()),
		"quoted_pairs":   h.catalog.Rates().Len(),
	}

	if h.pool != nil {
		if err := h.pool.Ping(c.Request.Context()); err != nil {
			body["status"] = "unhealthy"
			body["database"] = "disconnected"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["database"] = "connected"
	}

	c.JSON(http.StatusOK, body)
}
