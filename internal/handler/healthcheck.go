package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/metinatakli/airline-reservation-system/api"
	"github.com/metinatakli/airline-reservation-system/internal/config"
	"github.com/metinatakli/airline-reservation-system/internal/jsonutil"
	"github.com/metinatakli/airline-reservation-system/internal/vcs"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"

	pingTimeout = 2 * time.Second
)

// Checker reports whether a dependency is reachable.
type Checker interface {
	Ping(ctx context.Context) error
}

type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthcheckHandler struct {
	cfg      config.Config
	checkers map[string]Checker
}

func NewHealthcheckHandler(cfg config.Config, checkers map[string]Checker) *HealthcheckHandler {
	return &HealthcheckHandler{
		cfg:      cfg,
		checkers: checkers,
	}
}

func (h *HealthcheckHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := StatusUp
	httpStatus := http.StatusOK

	var checks *map[string]string

	if len(h.checkers) > 0 {
		names := make([]string, 0, len(h.checkers))
		for name := range h.checkers {
			names = append(names, name)
		}
		sort.Strings(names)

		results := make(map[string]string, len(names))

		for _, name := range names {
			ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
			err := h.checkers[name].Ping(ctx)
			cancel()

			if err != nil {
				results[name] = StatusDown
				status = StatusDown
				httpStatus = http.StatusServiceUnavailable
				continue
			}

			results[name] = StatusUp
		}

		checks = &results
	}

	resp := api.HealthcheckResponse{
		Status: status,
		Checks: checks,
		SystemInfo: api.SystemInfo{
			Version:     vcs.Version(),
			Environment: h.cfg.Env,
		},
	}

	jsonutil.WriteJSON(w, httpStatus, resp, nil)
}
