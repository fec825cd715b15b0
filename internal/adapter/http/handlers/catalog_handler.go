package handlers

import (
	"net/http"

	request "plumbing_estimator/internal/adapter/http/dto/request"
	response "plumbing_estimator/internal/adapter/http/dto/response"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListSuppliers godoc
// @Summary  List suppliers
// @Tags     catalogs
// @Produce  json
// @Success  200  {array}  response.SupplierResponse
// @Router   /suppliers [get]
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSuppliers(h.usecase.Suppliers()))
}

// GetSuggestions godoc
// @Summary  Description suggestions of a supplier
// @Tags     catalogs
// @Produce  json
// @Param    supplier  path      string  true  "Supplier id"
// @Success  200       {object}  response.SuggestionsResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /suppliers/{supplier}/suggestions [get]
func (h *CatalogHandler) GetSuggestions(c *gin.Context) {
	supplier := entities.Supplier{ID: entities.SupplierID(c.Param("supplier"))}
	suggestions, err := h.usecase.Suggestions(supplier.ID)
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuggestionsResponse{
		Supplier:         string(supplier.ID),
		SuggestionListID: supplier.SuggestionListID(),
		Suggestions:      suggestions,
	})
}

// ReplaceCatalog godoc
// @Summary      Replace a supplier catalog
// @Description  Records keep the supplier sheet's column names; the newest price per description wins
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        supplier  path  string                          true  "Supplier id"
// @Param        payload   body  request.ReplaceCatalogRequest   true  "Catalog records"
// @Success      200  {object}  response.CatalogSwapResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /catalogs/{supplier} [put]
func (h *CatalogHandler) ReplaceCatalog(c *gin.Context) {
	var payload request.ReplaceCatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	supplier := entities.SupplierID(c.Param("supplier"))
	n, err := h.usecase.ReplaceCatalog(c.Request.Context(), supplier, payload.Records)
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusOK, response.CatalogSwapResponse{Supplier: string(supplier), Entries: n})
}
