package routes

import (
	"plumbing_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathMaterialLists = "/material-lists"

func addMaterialListRoutes(rg *gin.RouterGroup, h *handlers.MaterialListHandler) {
	lists := rg.Group(PathMaterialLists)
	{
		lists.POST("", h.OpenMaterialList)
		lists.GET("/:id", h.GetMaterialList)
		lists.PUT("/:id/supplier", h.ChangeSupplier)
		lists.PUT("/:id/project-info", h.UpdateProjectInfo)
		lists.POST("/:id/export", h.ExportMaterialList)
		lists.POST("/:id/templates", h.SaveTemplate)
	}

	items := lists.Group("/:id/items")
	{
		items.POST("", h.AddItem)
		items.PATCH("/:index", h.UpdateItem)
		items.DELETE("/:index", h.RemoveItem)
		items.POST("/:index/move", h.MoveItem)
	}
}
