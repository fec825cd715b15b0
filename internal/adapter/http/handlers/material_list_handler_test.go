package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"plumbing_estimator/internal/adapter/http/handlers/mocks"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/materiallist"
	"plumbing_estimator/internal/usecase"
	"plumbing_estimator/pkg"
	"plumbing_estimator/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMaterialListRouter(t *testing.T) (*gin.Engine, *mocks.MockIMaterialListUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.RegisterGin())

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIMaterialListUseCase(ctrl)
	h := NewMaterialListHandler(uc)

	r := gin.New()
	r.POST("/v1/material-lists", h.OpenMaterialList)
	r.GET("/v1/material-lists/:id", h.GetMaterialList)
	r.PUT("/v1/material-lists/:id/supplier", h.ChangeSupplier)
	r.PUT("/v1/material-lists/:id/project-info", h.UpdateProjectInfo)
	r.POST("/v1/material-lists/:id/items", h.AddItem)
	r.PATCH("/v1/material-lists/:id/items/:index", h.UpdateItem)
	r.DELETE("/v1/material-lists/:id/items/:index", h.RemoveItem)
	r.POST("/v1/material-lists/:id/items/:index/move", h.MoveItem)
	r.POST("/v1/material-lists/:id/export", h.ExportMaterialList)
	r.POST("/v1/material-lists/:id/templates", h.SaveTemplate)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleView() usecase.MaterialListView {
	return usecase.MaterialListView{
		Session: entities.MaterialListSession{
			ID:       "s-1",
			Supplier: entities.SupplierSupply1,
			Items: []entities.LineItem{
				{Quantity: 2, Description: "Pipe", SupplyCode: "BPS", Unit: "ea", LastPrice: 7, Total: 14, Origin: entities.LineItemOriginPredetermined},
			},
		},
		Supplier:         entities.Supplier{ID: entities.SupplierSupply1, Code: "BPS", Name: "Supply 1"},
		SuggestionListID: "supply1List",
		Suggestions:      []string{"Cap", "Pipe"},
		Summary:          materiallist.Summary{Subtotal: 14, TotalWithTax: 14},
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestMaterialListHandler_Open(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newMaterialListRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/material-lists", "{")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown supplier is rejected by binding", func(t *testing.T) {
		r, _ := newMaterialListRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/material-lists", `{"supplier":"supply9"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Message, "supplier")
	})

	t.Run("client id falls back to header", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.OpenCommand) (usecase.MaterialListView, error) {
				assert.Equal(t, "browser-7", cmd.ClientID)
				assert.Equal(t, "Rough In", cmd.ListName)
				assert.Equal(t, entities.SupplierSupply1, cmd.Supplier)
				return sampleView(), nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/material-lists", bytes.NewBufferString(`{"list":" Rough In ","supplier":"supply1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderClientID, "browser-7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "s-1", body["id"])
		assert.Equal(t, 14.0, body["grand_total"])
	})

	t.Run("product list not found", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().Open(gomock.Any(), gomock.Any()).Return(usecase.MaterialListView{}, usecase.ErrProductListNotFound)

		w := doJSON(r, http.MethodPost, "/v1/material-lists", `{"list":"nope"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "PRODUCT_LIST_NOT_FOUND", decodeError(t, w).Code)
	})
}

func TestMaterialListHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().Get(gomock.Any(), "missing").Return(usecase.MaterialListView{}, usecase.ErrMaterialListNotFound)

		w := doJSON(r, http.MethodGet, "/v1/material-lists/missing", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "MATERIAL_LIST_NOT_FOUND", decodeError(t, w).Code)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().Get(gomock.Any(), "s-1").Return(sampleView(), nil)

		w := doJSON(r, http.MethodGet, "/v1/material-lists/s-1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().Get(gomock.Any(), "s-1").Return(usecase.MaterialListView{}, errors.New("redis down"))

		w := doJSON(r, http.MethodGet, "/v1/material-lists/s-1", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "INTERNAL_ERROR", body.Code)
		assert.NotContains(t, body.Message, "redis")
	})
}

func TestMaterialListHandler_ChangeSupplier(t *testing.T) {
	t.Run("missing supplier", func(t *testing.T) {
		r, _ := newMaterialListRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/material-lists/s-1/supplier", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().ChangeSupplier(gomock.Any(), "s-1", entities.SupplierSupply3).Return(sampleView(), nil)

		w := doJSON(r, http.MethodPut, "/v1/material-lists/s-1/supplier", `{"supplier":"supply3"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMaterialListHandler_UpdateProjectInfo(t *testing.T) {
	r, uc := newMaterialListRouter(t)
	uc.EXPECT().UpdateProjectInfo(gomock.Any(), "s-1", entities.ProjectInfo{Contractor: "ACME", Address: "1 Main St", Date: "2024-05-01"}).
		Return(sampleView(), nil)

	w := doJSON(r, http.MethodPut, "/v1/material-lists/s-1/project-info", `{"contractor":" ACME ","address":"1 Main St","date":"2024-05-01"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaterialListHandler_Items(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().AddItem(gomock.Any(), "s-1").Return(sampleView(), nil)

		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/items", "")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("bad index", func(t *testing.T) {
		r, _ := newMaterialListRouter(t)
		for _, path := range []string{"/v1/material-lists/s-1/items/abc", "/v1/material-lists/s-1/items/-1"} {
			w := doJSON(r, http.MethodPatch, path, `{"quantity":1}`)
			require.Equal(t, http.StatusBadRequest, w.Code, path)
			assert.Equal(t, "INVALID_ITEM_INDEX", decodeError(t, w).Code)
		}
	})

	t.Run("description only goes through autofill", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().EditDescription(gomock.Any(), "s-1", 0, "Cap").Return(sampleView(), nil)

		w := doJSON(r, http.MethodPatch, "/v1/material-lists/s-1/items/0", `{"description":"Cap"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("field update", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().UpdateItem(gomock.Any(), "s-1", 2, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ int, upd usecase.ItemUpdate) (usecase.MaterialListView, error) {
				require.NotNil(t, upd.Quantity)
				assert.Equal(t, 0.0, *upd.Quantity)
				require.NotNil(t, upd.LastPrice)
				assert.Equal(t, 4.5, *upd.LastPrice)
				assert.Nil(t, upd.Description)
				return sampleView(), nil
			})

		w := doJSON(r, http.MethodPatch, "/v1/material-lists/s-1/items/2", `{"quantity":"abc","last_price":"4.50"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update out of range", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().UpdateItem(gomock.Any(), "s-1", 9, gomock.Any()).Return(usecase.MaterialListView{}, usecase.ErrLineItemNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/material-lists/s-1/items/9", `{"unit":"ft"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ITEM_NOT_FOUND", decodeError(t, w).Code)
	})

	t.Run("remove", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().RemoveItem(gomock.Any(), "s-1", 0).Return(sampleView(), nil)

		w := doJSON(r, http.MethodDelete, "/v1/material-lists/s-1/items/0", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("move", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().MoveItem(gomock.Any(), "s-1", 1, materiallist.DirectionUp).Return(sampleView(), nil)

		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/items/1/move", `{"direction":"up"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("move with bad direction", func(t *testing.T) {
		r, _ := newMaterialListRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/items/1/move", `{"direction":"left"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMaterialListHandler_Export(t *testing.T) {
	t.Run("writes the pdf", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().Export(gomock.Any(), "s-1", true).Return(entities.Document{
			ContentType: "application/pdf",
			Filename:    "material_list.pdf",
			Body:        []byte("%PDF-1.4"),
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/export", `{"include_price":"yes"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="material_list.pdf"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.4", w.Body.String())
	})

	t.Run("empty body exports without prices", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().Export(gomock.Any(), "s-1", false).Return(entities.Document{ContentType: "application/pdf", Filename: "a.pdf"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/export", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("generator failure", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().Export(gomock.Any(), "s-1", false).Return(entities.Document{}, usecase.ErrExportFailed)

		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/export", `{"include_price":"no"}`)
		require.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "EXPORT_FAILED", decodeError(t, w).Code)
	})
}

func TestMaterialListHandler_SaveTemplate(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().SaveTemplate(gomock.Any(), "s-1", usecase.SaveTemplateCommand{Folder: "Smith"}).
			Return(usecase.SaveTemplateResult{}, usecase.ErrInvalidTemplateName)

		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/templates", `{"folder":"Smith","template_name":""}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_TEMPLATE_NAME", decodeError(t, w).Code)
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().SaveTemplate(gomock.Any(), "s-1", gomock.Any()).
			Return(usecase.SaveTemplateResult{}, usecase.ErrTemplateSaveFailed)

		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/templates", `{"template_name":"x"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newMaterialListRouter(t)
		uc.EXPECT().SaveTemplate(gomock.Any(), "s-1", usecase.SaveTemplateCommand{Folder: "Smith Job", Name: "rough in"}).
			Return(usecase.SaveTemplateResult{TemplateName: "Smith Job/rough in", RedirectURL: "/material_list?list=Smith+Job%2Frough+in"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/material-lists/s-1/templates", `{"folder":"Smith Job","template_name":"rough in"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "/material_list?list=Smith+Job%2Frough+in", body["redirect_url"])
	})
}
