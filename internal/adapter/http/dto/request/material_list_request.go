package request

import (
	"strings"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/materiallist"
	"plumbing_estimator/internal/usecase"
)

type ProjectInfoRequest struct {
	Contractor string `json:"contractor"`
	Address    string `json:"address"`
	Date       string `json:"date"`
}

func (r ProjectInfoRequest) ToEntity() entities.ProjectInfo {
	return entities.ProjectInfo{
		Contractor: strings.TrimSpace(r.Contractor),
		Address:    strings.TrimSpace(r.Address),
		Date:       strings.TrimSpace(r.Date),
	}
}

// OpenMaterialListRequest starts an editing session. Products are rows of a
// predetermined list with their original column names; when absent, List
// names a built-in list to load.
type OpenMaterialListRequest struct {
	ClientID    string             `json:"client_id"`
	List        string             `json:"list"`
	Supplier    string             `json:"supplier" binding:"omitempty,supplier"`
	Products    []map[string]any   `json:"products"`
	ProjectInfo ProjectInfoRequest `json:"project_info"`
}

func (r OpenMaterialListRequest) ToCommand(headerClientID string) usecase.OpenCommand {
	clientID := strings.TrimSpace(r.ClientID)
	if clientID == "" {
		clientID = strings.TrimSpace(headerClientID)
	}
	return usecase.OpenCommand{
		ClientID:    clientID,
		ListName:    strings.TrimSpace(r.List),
		Supplier:    entities.SupplierID(strings.TrimSpace(r.Supplier)),
		Products:    r.Products,
		ProjectInfo: r.ProjectInfo.ToEntity(),
	}
}

type ChangeSupplierRequest struct {
	Supplier string `json:"supplier" binding:"required,supplier"`
}

func (r ChangeSupplierRequest) SupplierID() entities.SupplierID {
	return entities.SupplierID(strings.TrimSpace(r.Supplier))
}

// UpdateItemRequest holds the edited fields of a row; omitted fields are kept.
type UpdateItemRequest struct {
	Quantity    *Number `json:"quantity"`
	Description *string `json:"description"`
	SupplyCode  *string `json:"supply_code"`
	Unit        *string `json:"unit"`
	LastPrice   *Number `json:"last_price"`
}

// OnlyDescription reports whether the edit is a plain description change.
func (r UpdateItemRequest) OnlyDescription() bool {
	return r.Description != nil && r.Quantity == nil && r.SupplyCode == nil && r.Unit == nil && r.LastPrice == nil
}

func (r UpdateItemRequest) ToItemUpdate() usecase.ItemUpdate {
	return usecase.ItemUpdate{
		Quantity:    r.Quantity.Float(),
		Description: r.Description,
		SupplyCode:  r.SupplyCode,
		Unit:        r.Unit,
		LastPrice:   r.LastPrice.Float(),
	}
}

type MoveItemRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

func (r MoveItemRequest) ToDirection() materiallist.Direction {
	return materiallist.Direction(r.Direction)
}

// ExportRequest carries the answer to the include-price prompt.
type ExportRequest struct {
	IncludePrice YesNo `json:"include_price"`
}

// SaveTemplateRequest is validated by the use case so a blank name maps to
// INVALID_TEMPLATE_NAME rather than a generic binding error.
type SaveTemplateRequest struct {
	Folder       string `json:"folder"`
	TemplateName string `json:"template_name"`
}

func (r SaveTemplateRequest) ToCommand() usecase.SaveTemplateCommand {
	return usecase.SaveTemplateCommand{Folder: r.Folder, Name: r.TemplateName}
}
