package api

import (
	"net/http"
	"os"
	"time"

	"github.com/projecthelena/flowtest/internal/config"
	"github.com/projecthelena/flowtest/internal/payload"
)

// Handler serves the fixture routes. Clock and environment are read on
// every request.
type Handler struct {
	Port        int
	Environment string
	Now         func() time.Time
	Environ     func() []string
	Runtime     payload.Runtime
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		Port:        cfg.Port,
		Environment: cfg.Environment,
		Now:         time.Now,
		Environ:     os.Environ,
		Runtime:     payload.CurrentRuntime(),
	}
}

// Greeting identifies the app along with the current time and deployment.
// @Summary      Greeting
// @Tags         fixture
// @Produce      json
// @Success      200  {object} payload.GreetingResponse
// @Router       / [get]
func (h *Handler) Greeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, payload.Greeting(h.Environment, h.Now(), h.Port))
}

// Env dumps the process environment, secrets included.
// @Summary      Process environment
// @Tags         fixture
// @Produce      json
// @Success      200  {object} payload.EnvironmentResponse
// @Router       /env [get]
func (h *Handler) Env(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, payload.Environment(h.Environ(), h.Runtime))
}
