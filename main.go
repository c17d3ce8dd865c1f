package main

import (
	"net"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/nova-hpc/oar-api/api"
	"github.com/nova-hpc/oar-api/config"
	"github.com/nova-hpc/oar-api/executor"
	"github.com/nova-hpc/oar-api/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	oar := scheduler.NewOar(executor.NewSSH(cfg.Host))
	h := api.NewHandler(oar, cfg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", h.Health)
	r.Get("/config", h.ClusterConfig)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/machines", h.ListMachines)
	r.Get("/machines/detailed", h.ListMachinesDetailed)
	r.Get("/clusters", h.ListClusters)

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.ListAllJobs)
		r.Post("/", h.CreateJob)
		r.Get("/mine", h.ListMyJobs)
		r.Route("/{jobID}", func(r chi.Router) {
			r.Get("/", h.JobStatus)
			r.Delete("/", h.DeleteJob)
			r.Get("/walltime", h.WalltimeStatus)
			r.Post("/walltime", h.ExtendWalltime)
		})
	})

	listenAddress := os.Getenv("LISTEN_ADDRESS")
	if len(listenAddress) == 0 {
		listenAddress = ":8080"
	}
	l, err := net.Listen("tcp", listenAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("listen failed")
	}

	log.Info().Str("addr", listenAddress).Str("host", cfg.Host).Msg("serving")
	if err := http.Serve(l, r); err != nil {
		log.Fatal().Err(err).Msg("serve failed")
	}
}
