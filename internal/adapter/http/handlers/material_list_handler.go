package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	request "plumbing_estimator/internal/adapter/http/dto/request"
	response "plumbing_estimator/internal/adapter/http/dto/response"
	"plumbing_estimator/internal/usecase"
	"plumbing_estimator/pkg"
	"plumbing_estimator/pkg/validator"

	"github.com/gin-gonic/gin"
)

// HeaderClientID identifies the browser (or user) whose supplier choice and
// last list are remembered across sessions.
const HeaderClientID = "X-Client-ID"

var (
	errInvalidMaterialListPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_LIST_INPUT", "Invalid material list payload", http.StatusBadRequest)
	errInvalidItemIndex           = pkg.NewDomainErrorSimple("INVALID_ITEM_INDEX", "Item index must be a non-negative integer", http.StatusBadRequest)
)

// MaterialListHandler serves the material list page: every row interaction is
// one request and every response is the re-rendered list.
type MaterialListHandler struct {
	usecase usecase.IMaterialListUseCase
}

func NewMaterialListHandler(uc usecase.IMaterialListUseCase) *MaterialListHandler {
	return &MaterialListHandler{usecase: uc}
}

// OpenMaterialList godoc
// @Summary      Open a material list
// @Description  Starts an editing session from pushed products or a named list
// @Tags         material-lists
// @Accept       json
// @Produce      json
// @Param        X-Client-ID  header  string                           false  "Client id"
// @Param        payload      body    request.OpenMaterialListRequest  true   "Session"
// @Success      201  {object}  response.MaterialListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /material-lists [post]
func (h *MaterialListHandler) OpenMaterialList(c *gin.Context) {
	var payload request.OpenMaterialListRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.usecase.Open(c.Request.Context(), payload.ToCommand(c.GetHeader(HeaderClientID)))
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromMaterialListView(view))
}

// GetMaterialList godoc
// @Summary  Get a material list
// @Tags     material-lists
// @Produce  json
// @Param    id   path      string  true  "Session id"
// @Success  200  {object}  response.MaterialListResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /material-lists/{id} [get]
func (h *MaterialListHandler) GetMaterialList(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialListView(view))
}

// ChangeSupplier godoc
// @Summary      Change the active supplier
// @Description  Rebinds every predetermined row to the supplier's code and catalog prices
// @Tags         material-lists
// @Accept       json
// @Produce      json
// @Param        id       path  string                          true  "Session id"
// @Param        payload  body  request.ChangeSupplierRequest   true  "Supplier"
// @Success      200  {object}  response.MaterialListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /material-lists/{id}/supplier [put]
func (h *MaterialListHandler) ChangeSupplier(c *gin.Context) {
	var payload request.ChangeSupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.usecase.ChangeSupplier(c.Request.Context(), c.Param("id"), payload.SupplierID())
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialListView(view))
}

// UpdateProjectInfo godoc
// @Summary  Update the project header
// @Tags     material-lists
// @Accept   json
// @Produce  json
// @Param    id       path  string                      true  "Session id"
// @Param    payload  body  request.ProjectInfoRequest  true  "Project info"
// @Success  200  {object}  response.MaterialListResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /material-lists/{id}/project-info [put]
func (h *MaterialListHandler) UpdateProjectInfo(c *gin.Context) {
	var payload request.ProjectInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.usecase.UpdateProjectInfo(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialListView(view))
}

// AddItem godoc
// @Summary  Add a blank row
// @Tags     material-lists
// @Produce  json
// @Param    id   path      string  true  "Session id"
// @Success  201  {object}  response.MaterialListResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /material-lists/{id}/items [post]
func (h *MaterialListHandler) AddItem(c *gin.Context) {
	view, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterialListView(view))
}

// UpdateItem godoc
// @Summary      Edit a row
// @Description  A new description is looked up in the active supplier's catalog
// @Tags         material-lists
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true  "Session id"
// @Param        index    path  int                        true  "Row index"
// @Param        payload  body  request.UpdateItemRequest  true  "Changed fields"
// @Success      200  {object}  response.MaterialListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /material-lists/{id}/items/{index} [patch]
func (h *MaterialListHandler) UpdateItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}

	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	var (
		view usecase.MaterialListView
		err  error
	)
	if payload.OnlyDescription() {
		view, err = h.usecase.EditDescription(c.Request.Context(), c.Param("id"), index, *payload.Description)
	} else {
		view, err = h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), index, payload.ToItemUpdate())
	}
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialListView(view))
}

// RemoveItem godoc
// @Summary  Remove a row
// @Tags     material-lists
// @Produce  json
// @Param    id     path  string  true  "Session id"
// @Param    index  path  int     true  "Row index"
// @Success  200  {object}  response.MaterialListResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /material-lists/{id}/items/{index} [delete]
func (h *MaterialListHandler) RemoveItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}

	view, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialListView(view))
}

// MoveItem godoc
// @Summary  Move a row up or down
// @Tags     material-lists
// @Accept   json
// @Produce  json
// @Param    id       path  string                   true  "Session id"
// @Param    index    path  int                      true  "Row index"
// @Param    payload  body  request.MoveItemRequest  true  "Direction"
// @Success  200  {object}  response.MaterialListResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /material-lists/{id}/items/{index}/move [post]
func (h *MaterialListHandler) MoveItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}

	var payload request.MoveItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.usecase.MoveItem(c.Request.Context(), c.Param("id"), index, payload.ToDirection())
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialListView(view))
}

// ExportMaterialList godoc
// @Summary      Export the list as PDF
// @Description  include_price carries the answer to the "include price?" prompt
// @Tags         material-lists
// @Accept       json
// @Produce      application/pdf
// @Param        id       path  string                 true   "Session id"
// @Param        payload  body  request.ExportRequest  false  "Export options"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /material-lists/{id}/export [post]
func (h *MaterialListHandler) ExportMaterialList(c *gin.Context) {
	var payload request.ExportRequest
	// an empty body exports without prices
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	doc, err := h.usecase.Export(c.Request.Context(), c.Param("id"), bool(payload.IncludePrice))
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(doc.Filename, `"`, "")+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

// SaveTemplate godoc
// @Summary      Save the list as a template
// @Description  Stores the list as folder/template_name and returns where to reopen it
// @Tags         material-lists
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "Session id"
// @Param        payload  body  request.SaveTemplateRequest  true  "Template"
// @Success      201  {object}  response.SaveTemplateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /material-lists/{id}/templates [post]
func (h *MaterialListHandler) SaveTemplate(c *gin.Context) {
	var payload request.SaveTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.usecase.SaveTemplate(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, mapMaterialListError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSaveTemplateResult(result))
}

func itemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		respondError(c, errInvalidItemIndex)
		return 0, false
	}
	return index, true
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondBindError(c *gin.Context, err error) {
	appErr := errInvalidMaterialListPayload
	if msg := validator.Describe(err); msg != "" {
		appErr = pkg.NewDomainErrorSimple(errInvalidMaterialListPayload.Code, msg, http.StatusBadRequest)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapMaterialListError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTemplateName):
		return pkg.NewDomainErrorSimple("INVALID_TEMPLATE_NAME", "Please enter a template name", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaterialListNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_LIST_NOT_FOUND", "Material list not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSupplier):
		return pkg.NewDomainErrorSimple("INVALID_SUPPLIER", "Unknown supplier", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDirection):
		return pkg.NewDomainErrorSimple("INVALID_DIRECTION", "Direction must be up or down", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductListNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_LIST_NOT_FOUND", "Product list not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateSaveFailed):
		return pkg.NewDomainError("TEMPLATE_SAVE_FAILED", "Failed to save template", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainError("EXPORT_FAILED", "Failed to generate the PDF", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
