package handler

import (
	"net/http"

	"github.com/nwchen/chathub/internal/api/response"
	"github.com/nwchen/chathub/internal/repository/mongo"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including store connectivity
func ReadyCheck(store *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			response.Error(w, http.StatusServiceUnavailable, "session store not ready")
			return
		}
		if err := store.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "session store not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}
