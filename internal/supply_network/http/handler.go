// Package http exposes the editing workspace over gin.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/auth"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/logging"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/connection"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/exchange"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/graph"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/service"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/simulation"
)

// maxImportBytes caps uploaded network documents.
const maxImportBytes = 4 << 20

type Handler struct {
	sessions *service.Registry
}

func New(sessions *service.Registry) *Handler {
	return &Handler{sessions: sessions}
}

// workspace resolves the caller's session. Routes are mounted behind an
// auth middleware, so a missing uid is a wiring bug and answers 401.
func (h *Handler) workspace(c *gin.Context) (*service.Workspace, bool) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return nil, false
	}
	return h.sessions.Get(uid), true
}

func statusFor(err error) int {
	var rejection *connection.Rejection
	var param *graph.ParamError
	var failure *simulation.Failure
	switch {
	case errors.As(err, &rejection),
		errors.As(err, &param),
		errors.Is(err, exchange.ErrMalformed),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, graph.ErrNoNodes),
		errors.Is(err, service.ErrNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, graph.ErrNodeNotFound),
		errors.Is(err, graph.ErrEdgeNotFound),
		errors.Is(err, graph.ErrDemandNotFound),
		errors.Is(err, domain.ErrNetworkNotFound),
		errors.Is(err, service.ErrScenarioNotFound),
		errors.Is(err, service.ErrNoResult):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotEnoughScenarios):
		return http.StatusConflict
	case errors.As(err, &failure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, operation string, err error) {
	status := statusFor(err)
	body := gin.H{"ok": false, "error": err.Error()}

	var rejection *connection.Rejection
	var param *graph.ParamError
	var failure *simulation.Failure
	switch {
	case errors.As(err, &rejection):
		body["reason"] = rejection.Reason
	case errors.As(err, &param):
		body["field"] = param.Field
	case errors.As(err, &failure):
		body["kind"] = failure.Kind
	}

	if status >= http.StatusInternalServerError {
		logging.New(c.Request.Context()).Error(operation, err)
	}
	c.JSON(status, body)
}

func badBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
}
