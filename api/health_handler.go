package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/personal-blog/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	database    database.Database
	startupTime time.Time
}

func newHealthHandler(database database.Database, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		database:    database,
		startupTime: startupTime,
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type SystemStatusResponse struct {
	Operational   bool    `json:"operational"`
	Message       string  `json:"message"`
	LastUpdated   string  `json:"lastUpdated"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

// health reports liveness only; it never touches the store
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// systemStatus pings the store; it always answers 200 and reports the outcome in the body
func (h healthHandler) systemStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := SystemStatusResponse{
			Operational:   true,
			Message:       "System is operational.",
			LastUpdated:   time.Now().UTC().Format(time.RFC3339),
			UptimeSeconds: time.Since(h.startupTime).Seconds(),
		}

		if err := h.database.Ping(); err != nil {
			h.logger.Error().Err(err).Msg("Store ping failed")
			response.Operational = false
			response.Message = "Database is unavailable."
		}

		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}
