package lead

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the lead API surface
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.List)
		leads.POST("", handler.Create)
		leads.POST("/bulk-delete", handler.BulkDelete)
		leads.POST("/bulk-update", handler.BulkUpdate)
		leads.GET("/:id", handler.Get)
		leads.PUT("/:id", handler.Update)
		leads.DELETE("/:id", handler.Delete)
	}

	r.GET("/stats", handler.Stats)
}
