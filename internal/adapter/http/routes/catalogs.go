package routes

import (
	"plumbing_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSuppliers = "/suppliers"
	PathCatalogs  = "/catalogs"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:supplier/suggestions", h.GetSuggestions)
	}

	rg.PUT(PathCatalogs+"/:supplier", h.ReplaceCatalog)
}
