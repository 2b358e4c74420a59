package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nwchen/chathub/internal/api/response"
	"github.com/nwchen/chathub/internal/domain"
)

// writeError maps domain errors onto HTTP status codes. A malformed id is
// answered exactly like a miss; only the log keeps them apart.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		response.BadRequest(w, "missing required input")
	case errors.Is(err, domain.ErrInvalidID):
		log.Debug().Err(err).Msg("malformed session id")
		response.NotFound(w, "session not found")
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, "session not found")
	default:
		log.Error().Err(err).Msg("request failed")
		response.InternalError(w, "internal server error")
	}
}
