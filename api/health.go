package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.oar.HealthCheck(r.Context()); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, Error{Error: err.Error()})
		log.Error().Err(err).Msg("health failed")
		return
	}
	render.JSON(w, r, OK{"ok"})
}

// ClusterConfig reports the configured host and operation defaults.
func (h *Handler) ClusterConfig(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, h.cfg.Describe())
}
