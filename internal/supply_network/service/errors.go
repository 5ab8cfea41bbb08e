package service

import "errors"

var (
	ErrNoResult           = errors.New("no simulation results yet")
	ErrNameRequired       = errors.New("name required")
	ErrNotEnoughScenarios = errors.New("save at least 2 scenarios to compare")
	ErrScenarioNotFound   = errors.New("scenario not found")
)
