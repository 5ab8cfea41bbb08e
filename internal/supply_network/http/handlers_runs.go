package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Validate(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "report": w.Validate(c.Request.Context())})
}

// Simulate blocks until the engine answers. The body is optional.
func (h *Handler) Simulate(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var body struct {
		HorizonDays int `json:"horizon_days"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			badBody(c)
			return
		}
	}
	res, err := w.Simulate(c.Request.Context(), body.HorizonDays)
	if err != nil {
		writeError(c, "workspace.simulate", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

func (h *Handler) Results(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	res, err := w.LastResult()
	if err != nil {
		writeError(c, "workspace.results", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

func (h *Handler) ResultsCSV(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	data, err := w.ResultsCSV()
	if err != nil {
		writeError(c, "workspace.results_csv", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="simulation-results.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *Handler) ListScenarios(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "scenarios": w.Scenarios()})
}

func (h *Handler) SaveScenario(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	var body nameBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badBody(c)
		return
	}
	s, err := w.SaveScenario(body.Name)
	if err != nil {
		writeError(c, "scenarios.save", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "scenario": s})
}

func (h *Handler) DeleteScenario(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	if err := w.DeleteScenario(c.Param("id")); err != nil {
		writeError(c, "scenarios.delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) CompareScenarios(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	cmp, err := w.CompareScenarios()
	if err != nil {
		writeError(c, "scenarios.compare", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "comparison": cmp})
}

func (h *Handler) Export(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	data, err := w.Export()
	if err != nil {
		writeError(c, "workspace.export", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="supply-network.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Import takes the raw document as the body. YAML is recognised from the
// filename query parameter or the content type.
func (h *Handler) Import(c *gin.Context) {
	w, ok := h.workspace(c)
	if !ok {
		return
	}
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		badBody(c)
		return
	}
	if len(data) > maxImportBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"ok": false, "error": "document too large"})
		return
	}

	filename := c.Query("filename")
	if filename == "" {
		filename = "upload.json"
		if strings.Contains(c.ContentType(), "yaml") {
			filename = "upload.yaml"
		}
	}
	view, err := w.Import(c.Request.Context(), filename, data)
	if err != nil {
		writeError(c, "workspace.import", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "workspace": view})
}
