package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/nova-hpc/oar-api/config"
	"github.com/nova-hpc/oar-api/scheduler"
)

type Handler struct {
	oar *scheduler.Oar
	cfg config.Config
}

func NewHandler(oar *scheduler.Oar, cfg config.Config) *Handler {
	return &Handler{oar: oar, cfg: cfg}
}

// jobID parses the {jobID} path parameter; ok is false after the 400 has
// already been rendered.
func jobID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil || id <= 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error{Error: "job id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// renderResult writes a normalized scheduler result. Degraded results are
// still 200s: the caller gets the parse failure plus the raw text instead
// of losing the output.
func renderResult(w http.ResponseWriter, r *http.Request, result *scheduler.Result) {
	if result.Degraded {
		payload := map[string]any{"error": result.Message}
		if result.Raw != "" {
			payload["raw_output"] = result.Raw
		}
		render.JSON(w, r, payload)
		return
	}
	render.JSON(w, r, result.Data)
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *scheduler.ValidationError
	if errors.As(err, &verr) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error{Error: verr.Message})
		return
	}
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, Error{Error: err.Error()})
}
