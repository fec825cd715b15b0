package response

import (
	"time"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase"
)

type SupplierResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	SuggestionListID string `json:"suggestion_list_id"`
}

type LineItemResponse struct {
	Index       int     `json:"index"`
	Quantity    float64 `json:"quantity"`
	Description string  `json:"description"`
	SupplyCode  string  `json:"supply_code"`
	Unit        string  `json:"unit"`
	LastPrice   float64 `json:"last_price"`
	Total       float64 `json:"total"`
	Origin      string  `json:"origin"`
}

type ProjectInfoResponse struct {
	Contractor string `json:"contractor"`
	Address    string `json:"address"`
	Date       string `json:"date"`
}

// MaterialListResponse is everything a page needs to render one session.
type MaterialListResponse struct {
	ID           string              `json:"id"`
	ClientID     string              `json:"client_id,omitempty"`
	TemplateName string              `json:"template_name,omitempty"`
	Supplier     SupplierResponse    `json:"supplier"`
	Suggestions  []string            `json:"suggestions"`
	Items        []LineItemResponse  `json:"items"`
	ProjectInfo  ProjectInfoResponse `json:"project_info"`
	GrandTotal   float64             `json:"grand_total"`
	TaxRate      float64             `json:"tax_rate"`
	Tax          float64             `json:"tax"`
	TotalWithTax float64             `json:"total_with_tax"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func FromSupplier(s entities.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:               string(s.ID),
		Code:             s.Code,
		Name:             s.Name,
		SuggestionListID: s.SuggestionListID(),
	}
}

func FromSuppliers(list []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSupplier(s))
	}
	return out
}

func FromMaterialListView(v usecase.MaterialListView) MaterialListResponse {
	items := make([]LineItemResponse, 0, len(v.Session.Items))
	for i, it := range v.Session.Items {
		items = append(items, LineItemResponse{
			Index:       i,
			Quantity:    it.Quantity,
			Description: it.Description,
			SupplyCode:  it.SupplyCode,
			Unit:        it.Unit,
			LastPrice:   it.LastPrice,
			Total:       it.Total,
			Origin:      string(it.Origin),
		})
	}
	suggestions := v.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return MaterialListResponse{
		ID:           v.Session.ID,
		ClientID:     v.Session.ClientID,
		TemplateName: v.Session.TemplateName,
		Supplier:     FromSupplier(v.Supplier),
		Suggestions:  suggestions,
		Items:        items,
		ProjectInfo: ProjectInfoResponse{
			Contractor: v.Session.ProjectInfo.Contractor,
			Address:    v.Session.ProjectInfo.Address,
			Date:       v.Session.ProjectInfo.Date,
		},
		GrandTotal:   v.Summary.Subtotal,
		TaxRate:      v.Summary.TaxRate,
		Tax:          v.Summary.Tax,
		TotalWithTax: v.Summary.TotalWithTax,
		CreatedAt:    v.Session.CreatedAt,
		UpdatedAt:    v.Session.UpdatedAt,
	}
}

type SaveTemplateResponse struct {
	TemplateName string `json:"template_name"`
	RedirectURL  string `json:"redirect_url"`
}

func FromSaveTemplateResult(r usecase.SaveTemplateResult) SaveTemplateResponse {
	return SaveTemplateResponse{TemplateName: r.TemplateName, RedirectURL: r.RedirectURL}
}
