package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"
)

func (h *Handler) ListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.oar.ListMachines(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("list machines failed")
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, machines)
}

func (h *Handler) ListMachinesDetailed(w http.ResponseWriter, r *http.Request) {
	result, err := h.oar.ListMachinesDetailed(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("detailed machine listing failed")
		renderError(w, r, err)
		return
	}
	renderResult(w, r, result)
}

func (h *Handler) ListClusters(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.oar.ListClusters(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("list clusters failed")
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, clusters)
}
