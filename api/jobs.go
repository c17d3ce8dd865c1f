package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"github.com/nova-hpc/oar-api/scheduler"
)

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	req := CreateJobRequest{
		Nodes:    h.cfg.Defaults.Nodes,
		Walltime: h.cfg.Defaults.Walltime,
		Command:  h.cfg.Defaults.Command,
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error{Error: err.Error()})
		return
	}

	result, err := h.oar.Submit(r.Context(), &scheduler.SubmitRequest{
		Clusters:   req.Clusters,
		Nodes:      req.Nodes,
		Walltime:   req.Walltime,
		Command:    req.Command,
		Name:       req.Name,
		BestEffort: req.BestEffort,
	})
	if err != nil {
		log.Warn().Err(err).Msg("create job failed")
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, CreateJobResponse{JobID: result.JobID, Output: result.Output})
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, OK{h.oar.Delete(r.Context(), id)})
}

func (h *Handler) ExtendWalltime(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}

	var req ExtendWalltimeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error{Error: err.Error()})
		return
	}

	render.JSON(w, r, OK{h.oar.ExtendWalltime(r.Context(), &scheduler.ExtendRequest{
		JobID:          id,
		AdditionalTime: req.AdditionalTime,
		Force:          req.Force,
	})})
}

func (h *Handler) WalltimeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, OK{h.oar.WalltimeStatus(r.Context(), id)})
}

func (h *Handler) JobStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(w, r)
	if !ok {
		return
	}
	renderResult(w, r, h.oar.JobStatus(r.Context(), id))
}

func (h *Handler) ListAllJobs(w http.ResponseWriter, r *http.Request) {
	renderResult(w, r, h.oar.ListAllJobs(r.Context()))
}

func (h *Handler) ListMyJobs(w http.ResponseWriter, r *http.Request) {
	renderResult(w, r, h.oar.ListMyJobs(r.Context()))
}
