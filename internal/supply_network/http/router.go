package http

import "github.com/gin-gonic/gin"

// Register registers the supply network routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	ws := rg.Group("/workspace")
	ws.GET("", h.GetWorkspace)
	ws.PUT("/name", h.RenameCurrent)
	ws.PUT("/description", h.SetDescription)
	ws.POST("/flush", h.Flush)
	ws.POST("/new", h.NewNetwork)

	ws.POST("/nodes", h.AddNode)
	ws.PATCH("/nodes/:id", h.UpdateNode)
	ws.GET("/nodes/:id/impact", h.NodeImpact)
	ws.DELETE("/nodes/:id", h.DeleteNode)

	ws.POST("/edges", h.AddEdge)
	ws.PATCH("/edges/:id", h.UpdateEdge)
	ws.DELETE("/edges/:id", h.DeleteEdge)

	ws.POST("/demands", h.AddDemand)
	ws.PATCH("/demands/:id", h.UpdateDemand)
	ws.DELETE("/demands/:id", h.DeleteDemand)

	ws.POST("/validate", h.Validate)
	ws.POST("/simulate", h.Simulate)
	ws.GET("/results", h.Results)
	ws.GET("/results.csv", h.ResultsCSV)

	ws.GET("/scenarios", h.ListScenarios)
	ws.POST("/scenarios", h.SaveScenario)
	ws.GET("/scenarios/compare", h.CompareScenarios)
	ws.DELETE("/scenarios/:id", h.DeleteScenario)

	ws.GET("/export", h.Export)
	ws.POST("/import", h.Import)

	nets := rg.Group("/networks")
	nets.GET("", h.ListNetworks)
	nets.POST("/save-as", h.SaveAsNew)
	nets.POST("/:id/load", h.LoadNetwork)
	nets.PUT("/:id/name", h.RenameNetwork)
	nets.DELETE("/:id", h.DeleteNetwork)
}
