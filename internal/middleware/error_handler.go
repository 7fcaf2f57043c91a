package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/remitfair/corridor-quote-service/internal/service"
)

type ErrorBody struct {
	Error string `json:"error"`
}

// MapError translates service errors to HTTP statuses. Unquotable currency
// pairs never reach here: they are a defined quote outcome, not an error.
func MapError(err error) (int, ErrorBody) {
	switch {
	case errors.Is(err, service.ErrCorridorNotFound),
		errors.Is(err, service.ErrRailNotFound):
		return http.StatusNotFound, ErrorBody{Error: err.Error()}
	}

	log.Error().Err(err).Msg("unhandled service error")
	return http.StatusInternalServerError, ErrorBody{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
