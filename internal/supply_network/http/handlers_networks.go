package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type nameBody struct {
	Name string `json:"name"`
}

func (h *Handler) ListNetworks(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	items, err := w.ListNetworks(c.Request.Context())
	if err != nil {
		writeError(c, "networks.list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "networks": items})
}

func (h *Handler) LoadNetwork(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	view, err := w.LoadNetwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "networks.load", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": view})
}

func (h *Handler) NewNetwork(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	view, err := w.NewNetwork(c.Request.Context())
	if err != nil {
		writeError(c, "networks.new", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": view})
}

func (h *Handler) DeleteNetwork(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	view, err := w.DeleteNetwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "networks.delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": view})
}

func (h *Handler) RenameNetwork(c *gin.Context) {
	h.rename(c, c.Param("id"))
}

// RenameCurrent renames whatever network is open, saved or not.
func (h *Handler) RenameCurrent(c *gin.Context) {
	h.rename(c, "")
}

func (h *Handler) rename(c *gin.Context, id string) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var body nameBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badBody(c)
		return
	}
	view, err := w.RenameNetwork(c.Request.Context(), id, body.Name)
	if err != nil {
		writeError(c, "networks.rename", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": view})
}

func (h *Handler) SaveAsNew(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var body nameBody
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			badBody(c)
			return
		}
	}
	summary, err := w.SaveAsNew(c.Request.Context(), body.Name)
	if err != nil {
		writeError(c, "networks.save_as_new", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "network": summary})
}
