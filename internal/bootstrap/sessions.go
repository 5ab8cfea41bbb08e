package bootstrap

import (
	"github.com/GoSim-25-26J-441/supplynet-backend/config"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/metrics"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/repository"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/service"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/simulation"
)

// NewSessions wires one workspace per user over the shared store and
// engine client. The caller starts the idle sweep.
func NewSessions(cfg *config.Config, repo repository.Repository, m *metrics.Registry) *service.Registry {
	engine := simulation.NewEngineClient(cfg.Engine.URL, cfg.Engine.Timeout, cfg.Engine.RPS)
	opts := service.Options{
		Debounce:    cfg.Autosave.Debounce,
		ErrorReset:  cfg.Autosave.ErrorReset,
		SaveTimeout: cfg.Autosave.Timeout,
		Metrics:     m,
	}
	return service.NewRegistry(func(owner string) *service.Workspace {
		return service.NewWorkspace(owner, repo, engine, opts)
	}, cfg.Session.IdleTTL, m)
}
