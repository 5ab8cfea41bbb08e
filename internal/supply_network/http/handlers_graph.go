package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

func (h *Handler) GetWorkspace(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": w.View()})
}

func (h *Handler) SetDescription(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var body struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badBody(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": w.SetDescription(body.Description)})
}

func (h *Handler) Flush(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	if err := w.Flush(c.Request.Context()); err != nil {
		writeError(c, "workspace.flush", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "save_status": w.SaveStatus()})
}

func (h *Handler) AddNode(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var body struct {
		Role domain.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badBody(c)
		return
	}
	n, err := w.AddNode(body.Role)
	if err != nil {
		writeError(c, "workspace.add_node", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "node": n})
}

func (h *Handler) UpdateNode(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var patch domain.NodePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	n, err := w.UpdateNode(c.Param("id"), patch)
	if err != nil {
		writeError(c, "workspace.update_node", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "node": n})
}

// NodeImpact lists what deleting the node would take with it.
func (h *Handler) NodeImpact(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	imp, err := w.CascadeImpact(c.Param("id"))
	if err != nil {
		writeError(c, "workspace.node_impact", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "impact": imp})
}

func (h *Handler) DeleteNode(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	imp, err := w.DeleteNode(c.Param("id"))
	if err != nil {
		writeError(c, "workspace.delete_node", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "removed": imp})
}

func (h *Handler) AddEdge(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var body domain.EdgeCandidate
	if err := c.ShouldBindJSON(&body); err != nil {
		badBody(c)
		return
	}
	e, err := w.AddEdge(body)
	if err != nil {
		writeError(c, "workspace.add_edge", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "edge": e})
}

func (h *Handler) UpdateEdge(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var patch domain.EdgePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	e, err := w.UpdateEdge(c.Param("id"), patch)
	if err != nil {
		writeError(c, "workspace.update_edge", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "edge": e})
}

func (h *Handler) DeleteEdge(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	if err := w.DeleteEdge(c.Param("id")); err != nil {
		writeError(c, "workspace.delete_edge", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) AddDemand(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var body domain.DemandInput
	// an empty body takes every default
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			badBody(c)
			return
		}
	}
	d, err := w.AddDemand(body)
	if err != nil {
		writeError(c, "workspace.add_demand", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "demand": d})
}

func (h *Handler) UpdateDemand(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var patch domain.DemandPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	d, err := w.UpdateDemand(c.Param("id"), patch)
	if err != nil {
		writeError(c, "workspace.update_demand", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "demand": d})
}

func (h *Handler) DeleteDemand(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	if err := w.DeleteDemand(c.Param("id")); err != nil {
		writeError(c, "workspace.delete_demand", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
