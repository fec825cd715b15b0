package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"plumbing_estimator/internal/domain/catalog"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/domain/materiallist"
	"plumbing_estimator/internal/usecase/interfaces"
	"plumbing_estimator/pkg/logger"
	"plumbing_estimator/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrMaterialListNotFound = errors.New("material list not found")
	ErrLineItemNotFound     = errors.New("line item not found")
	ErrInvalidSupplier      = errors.New("invalid supplier")
	ErrInvalidDirection     = errors.New("invalid direction")
	ErrInvalidTemplateName  = errors.New("template name is required")
	ErrProductListNotFound  = errors.New("product list not found")
	ErrTemplateSaveFailed   = errors.New("template save failed")
	ErrExportFailed         = errors.New("export failed")
)

const (
	templateSaveSuccess = "success"
	templateSaveFailure = "failure"
	templateSaveInvalid = "invalid"
)

// IMaterialListUseCase is the row interaction surface of a material list page.
// Every call is one UI event: load the session, mutate the list, persist it
// and return the re-rendered view.
type IMaterialListUseCase interface {
	Open(ctx context.Context, cmd OpenCommand) (MaterialListView, error)
	Get(ctx context.Context, id string) (MaterialListView, error)
	ChangeSupplier(ctx context.Context, id string, supplier entities.SupplierID) (MaterialListView, error)
	AddItem(ctx context.Context, id string) (MaterialListView, error)
	UpdateItem(ctx context.Context, id string, index int, upd ItemUpdate) (MaterialListView, error)
	EditDescription(ctx context.Context, id string, index int, description string) (MaterialListView, error)
	RemoveItem(ctx context.Context, id string, index int) (MaterialListView, error)
	MoveItem(ctx context.Context, id string, index int, dir materiallist.Direction) (MaterialListView, error)
	UpdateProjectInfo(ctx context.Context, id string, info entities.ProjectInfo) (MaterialListView, error)
	Export(ctx context.Context, id string, includePrice bool) (entities.Document, error)
	SaveTemplate(ctx context.Context, id string, cmd SaveTemplateCommand) (SaveTemplateResult, error)
}

// OpenCommand starts a session. Products wins over ListName when both are set.
type OpenCommand struct {
	ClientID    string
	ListName    string
	Supplier    entities.SupplierID
	Products    []map[string]any
	ProjectInfo entities.ProjectInfo
}

// ItemUpdate carries the edited fields of one row. A description change is
// resolved against the catalog before the other fields are merged, so an
// explicit price or unit in the same edit wins over the autofilled one.
type ItemUpdate struct {
	Quantity    *float64
	Description *string
	SupplyCode  *string
	Unit        *string
	LastPrice   *float64
}

type SaveTemplateCommand struct {
	Folder string
	Name   string
}

type SaveTemplateResult struct {
	TemplateName string
	RedirectURL  string
}

// MaterialListView is the render model of a session.
type MaterialListView struct {
	Session          entities.MaterialListSession
	Supplier         entities.Supplier
	SuggestionListID string
	Suggestions      []string
	Summary          materiallist.Summary
}

type MaterialListDeps struct {
	Sessions    interfaces.ISessionRepository
	Preferences interfaces.IPreferencesRepository
	Templates   interfaces.ITemplateGateway
	Documents   interfaces.IDocumentGateway
	Products    interfaces.IProductListSource
	Registry    *catalog.Registry
	Logger      *logger.Logger
	Metrics     *metrics.Recorder
	ListBaseURL string
	TaxRate     float64
	Now         func() time.Time
}

type MaterialListUseCase struct {
	sessions    interfaces.ISessionRepository
	prefs       interfaces.IPreferencesRepository
	templates   interfaces.ITemplateGateway
	documents   interfaces.IDocumentGateway
	products    interfaces.IProductListSource
	registry    *catalog.Registry
	log         *logger.Logger
	metrics     *metrics.Recorder
	listBaseURL string
	taxRate     float64
	now         func() time.Time
}

var _ IMaterialListUseCase = (*MaterialListUseCase)(nil)

func NewMaterialListUseCase(d MaterialListDeps) *MaterialListUseCase {
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if d.Now == nil {
		d.Now = func() time.Time { return time.Now().UTC() }
	}
	if d.Registry == nil {
		d.Registry = catalog.NewRegistry(entities.DefaultSuppliers())
	}
	return &MaterialListUseCase{
		sessions:    d.Sessions,
		prefs:       d.Preferences,
		templates:   d.Templates,
		documents:   d.Documents,
		products:    d.Products,
		registry:    d.Registry,
		log:         d.Logger,
		metrics:     d.Metrics,
		listBaseURL: d.ListBaseURL,
		taxRate:     d.TaxRate,
		now:         d.Now,
	}
}

func (u *MaterialListUseCase) Open(ctx context.Context, cmd OpenCommand) (MaterialListView, error) {
	clientID := strings.TrimSpace(cmd.ClientID)
	listName := strings.TrimSpace(cmd.ListName)

	var prefs entities.Preferences
	if clientID != "" && u.prefs != nil {
		p, err := u.prefs.Get(ctx, clientID)
		if err != nil {
			// preferences only pick defaults; the page still opens
			u.log.Error(u.log.WithField(ctx, "client_id", clientID), "[material_list][usecase] load preferences", err)
		} else {
			prefs = p
		}
	}

	supplier, err := u.pickSupplier(cmd.Supplier, prefs.SelectedSupplier)
	if err != nil {
		return MaterialListView{}, err
	}

	rows := cmd.Products
	if rows == nil && listName == "" && prefs.SelectedTemplate != "" {
		return u.resume(ctx, cmd, supplier, prefs.SelectedTemplate)
	}
	if rows == nil && listName != "" {
		if u.products == nil {
			return MaterialListView{}, ErrProductListNotFound
		}
		rows, err = u.products.LoadProductList(ctx, listName)
		if errors.Is(err, interfaces.ErrProductListNotFound) {
			return MaterialListView{}, ErrProductListNotFound
		}
		if err != nil {
			return MaterialListView{}, fmt.Errorf("loading product list %q: %w", listName, err)
		}
	}

	return u.start(ctx, cmd, supplier, listName, rows)
}

// resume reopens the client's last template. Saved templates live in the
// template store, so a name the product list source does not know still
// restores the template context with an empty list.
func (u *MaterialListUseCase) resume(ctx context.Context, cmd OpenCommand, supplier entities.Supplier, templateName string) (MaterialListView, error) {
	var rows []map[string]any
	if u.products != nil {
		loaded, err := u.products.LoadProductList(ctx, templateName)
		switch {
		case err == nil:
			rows = loaded
		case errors.Is(err, interfaces.ErrProductListNotFound):
		default:
			u.log.Error(u.log.WithField(ctx, "list", templateName), "[material_list][usecase] load remembered list", err)
		}
	}
	return u.start(ctx, cmd, supplier, templateName, rows)
}

func (u *MaterialListUseCase) start(ctx context.Context, cmd OpenCommand, supplier entities.Supplier, listName string, rows []map[string]any) (MaterialListView, error) {
	clientID := strings.TrimSpace(cmd.ClientID)
	list := materiallist.New(materiallist.ProductsFromRaw(rows, supplier.Code))
	list.RebindSupplier(supplier, u.registry.Index(supplier.ID))

	now := u.now()
	s := entities.MaterialListSession{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		TemplateName: listName,
		Supplier:     supplier.ID,
		Items:        list.Items(),
		ProjectInfo:  cmd.ProjectInfo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return MaterialListView{}, err
	}
	u.metrics.IncSessionOpened()
	u.rememberPreferences(ctx, s)

	ctx = u.log.WithField(ctx, "session_id", s.ID)
	u.log.Info(u.log.WithFields(ctx, map[string]any{
		"supplier": string(supplier.ID),
		"list":     listName,
		"items":    len(s.Items),
	}), "[material_list][usecase] session opened")

	return u.view(s), nil
}

func (u *MaterialListUseCase) Get(ctx context.Context, id string) (MaterialListView, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return MaterialListView{}, err
	}
	return u.view(s), nil
}

// ChangeSupplier re-resolves every predetermined row against the new supplier
// and remembers the choice for the client.
func (u *MaterialListUseCase) ChangeSupplier(ctx context.Context, id string, supplierID entities.SupplierID) (MaterialListView, error) {
	supplier, ok := u.registry.Supplier(supplierID)
	if !ok {
		return MaterialListView{}, ErrInvalidSupplier
	}
	return u.mutate(ctx, id, func(s *entities.MaterialListSession, l *materiallist.List) error {
		hits := l.RebindSupplier(supplier, u.registry.Index(supplier.ID))
		s.Supplier = supplier.ID
		u.log.Debug(u.log.WithFields(ctx, map[string]any{
			"session_id": s.ID,
			"supplier":   string(supplier.ID),
			"hits":       hits,
		}), "[material_list][usecase] supplier changed")
		return nil
	}, func(s entities.MaterialListSession) {
		u.rememberPreferences(ctx, s)
	})
}

// AddItem appends a blank manual row wearing the active supplier's code.
func (u *MaterialListUseCase) AddItem(ctx context.Context, id string) (MaterialListView, error) {
	return u.mutate(ctx, id, func(s *entities.MaterialListSession, l *materiallist.List) error {
		supplier, _ := u.registry.Supplier(s.Supplier)
		l.Insert(supplier.Code)
		return nil
	}, nil)
}

func (u *MaterialListUseCase) UpdateItem(ctx context.Context, id string, index int, upd ItemUpdate) (MaterialListView, error) {
	return u.mutate(ctx, id, func(s *entities.MaterialListSession, l *materiallist.List) error {
		if index < 0 || index >= l.Len() {
			return ErrLineItemNotFound
		}
		if upd.Description != nil {
			u.applyDescription(s, l, index, *upd.Description)
		}
		l.Update(index, materiallist.Patch{
			Quantity:   upd.Quantity,
			SupplyCode: upd.SupplyCode,
			Unit:       upd.Unit,
			LastPrice:  upd.LastPrice,
		})
		return nil
	}, nil)
}

func (u *MaterialListUseCase) EditDescription(ctx context.Context, id string, index int, description string) (MaterialListView, error) {
	return u.UpdateItem(ctx, id, index, ItemUpdate{Description: &description})
}

// RemoveItem ignores indexes that no longer exist.
func (u *MaterialListUseCase) RemoveItem(ctx context.Context, id string, index int) (MaterialListView, error) {
	return u.mutate(ctx, id, func(_ *entities.MaterialListSession, l *materiallist.List) error {
		l.Remove(index)
		return nil
	}, nil)
}

// MoveItem ignores moves past either end of the list.
func (u *MaterialListUseCase) MoveItem(ctx context.Context, id string, index int, dir materiallist.Direction) (MaterialListView, error) {
	if _, ok := materiallist.ParseDirection(string(dir)); !ok {
		return MaterialListView{}, ErrInvalidDirection
	}
	return u.mutate(ctx, id, func(_ *entities.MaterialListSession, l *materiallist.List) error {
		l.Move(index, dir)
		return nil
	}, nil)
}

func (u *MaterialListUseCase) UpdateProjectInfo(ctx context.Context, id string, info entities.ProjectInfo) (MaterialListView, error) {
	return u.mutate(ctx, id, func(s *entities.MaterialListSession, _ *materiallist.List) error {
		s.ProjectInfo = entities.ProjectInfo{
			Contractor: strings.TrimSpace(info.Contractor),
			Address:    strings.TrimSpace(info.Address),
			Date:       strings.TrimSpace(info.Date),
		}
		return nil
	}, nil)
}

// Export renders the current list through the document generator. The
// session is not modified.
func (u *MaterialListUseCase) Export(ctx context.Context, id string, includePrice bool) (entities.Document, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	ctx = u.log.WithField(ctx, "session_id", s.ID)

	req := entities.ExportRequest{
		Items:        materiallist.New(s.Items).Snapshot(),
		IncludePrice: includePrice,
		ProjectInfo:  s.ProjectInfo,
	}
	doc, err := u.documents.RenderMaterialList(ctx, req)
	u.metrics.ObserveExport(includePrice, err)
	if err != nil {
		u.log.Error(ctx, "[material_list][usecase] export", err)
		return entities.Document{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	u.log.Info(u.log.WithField(ctx, "include_price", includePrice), "[material_list][usecase] exported")
	return doc, nil
}

// SaveTemplate stores the list under "folder/name" (or just name) and returns
// where the saved list can be reopened. A blank name fails before anything is
// loaded or sent.
func (u *MaterialListUseCase) SaveTemplate(ctx context.Context, id string, cmd SaveTemplateCommand) (SaveTemplateResult, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		u.metrics.ObserveTemplateSave(templateSaveInvalid)
		return SaveTemplateResult{}, ErrInvalidTemplateName
	}
	fullName := name
	if folder := strings.TrimSpace(cmd.Folder); folder != "" {
		fullName = folder + "/" + name
	}

	s, err := u.load(ctx, id)
	if err != nil {
		return SaveTemplateResult{}, err
	}
	ctx = u.log.WithFields(ctx, map[string]any{"session_id": s.ID, "template": fullName})

	info := s.ProjectInfo
	req := entities.TemplateSaveRequest{
		TemplateName: fullName,
		Items:        materiallist.New(s.Items).Snapshot(),
		ProjectInfo:  &info,
	}
	if err := u.templates.SaveTemplate(ctx, req); err != nil {
		u.metrics.ObserveTemplateSave(templateSaveFailure)
		u.log.Error(ctx, "[material_list][usecase] save template", err)
		return SaveTemplateResult{}, fmt.Errorf("%w: %v", ErrTemplateSaveFailed, err)
	}
	u.metrics.ObserveTemplateSave(templateSaveSuccess)

	s.TemplateName = fullName
	s.UpdatedAt = u.now()
	if err := u.sessions.Save(ctx, s); err != nil {
		// the template is already stored; the redirect still works
		u.log.Error(ctx, "[material_list][usecase] persist session after save", err)
	}
	u.rememberPreferences(ctx, s)
	u.log.Info(ctx, "[material_list][usecase] template saved")

	return SaveTemplateResult{
		TemplateName: fullName,
		RedirectURL:  u.redirectURL(fullName),
	}, nil
}

func (u *MaterialListUseCase) redirectURL(templateName string) string {
	return u.listBaseURL + "?" + url.Values{"list": []string{templateName}}.Encode()
}

func (u *MaterialListUseCase) applyDescription(s *entities.MaterialListSession, l *materiallist.List, index int, description string) {
	supplier, _ := u.registry.Supplier(s.Supplier)
	hit, _ := l.ApplyDescription(index, description, supplier, u.registry.Index(supplier.ID))
	u.metrics.ObserveAutofill(string(supplier.ID), hit)
}

// mutate loads the session, applies fn to its list and persists the result.
// after runs only once the session is saved.
func (u *MaterialListUseCase) mutate(
	ctx context.Context,
	id string,
	fn func(s *entities.MaterialListSession, l *materiallist.List) error,
	after func(s entities.MaterialListSession),
) (MaterialListView, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return MaterialListView{}, err
	}
	list := materiallist.New(s.Items)
	if err := fn(&s, list); err != nil {
		return MaterialListView{}, err
	}
	s.Items = list.Items()
	s.UpdatedAt = u.now()
	if err := u.sessions.Save(ctx, s); err != nil {
		return MaterialListView{}, err
	}
	if after != nil {
		after(s)
	}
	return u.view(s), nil
}

func (u *MaterialListUseCase) load(ctx context.Context, id string) (entities.MaterialListSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaterialListSession{}, ErrMaterialListNotFound
	}
	s, err := u.sessions.GetByID(ctx, id)
	if err != nil {
		return entities.MaterialListSession{}, err
	}
	if s.ID == "" {
		return entities.MaterialListSession{}, ErrMaterialListNotFound
	}
	if _, ok := u.registry.Supplier(s.Supplier); !ok {
		s.Supplier = entities.DefaultSupplierID
	}
	return s, nil
}

func (u *MaterialListUseCase) pickSupplier(requested, remembered entities.SupplierID) (entities.Supplier, error) {
	if requested != "" {
		s, ok := u.registry.Supplier(requested)
		if !ok {
			return entities.Supplier{}, ErrInvalidSupplier
		}
		return s, nil
	}
	if s, ok := u.registry.Supplier(remembered); ok {
		return s, nil
	}
	s, _ := u.registry.Supplier(entities.DefaultSupplierID)
	return s, nil
}

func (u *MaterialListUseCase) rememberPreferences(ctx context.Context, s entities.MaterialListSession) {
	if s.ClientID == "" || u.prefs == nil {
		return
	}
	p := entities.Preferences{
		ClientID:         s.ClientID,
		SelectedSupplier: s.Supplier,
		SelectedTemplate: s.TemplateName,
		UpdatedAt:        u.now(),
	}
	if err := u.prefs.Save(ctx, p); err != nil {
		u.log.Error(u.log.WithField(ctx, "client_id", s.ClientID), "[material_list][usecase] save preferences", err)
	}
}

func (u *MaterialListUseCase) view(s entities.MaterialListSession) MaterialListView {
	supplier, _ := u.registry.Supplier(s.Supplier)
	ix := u.registry.Index(supplier.ID)
	list := materiallist.New(s.Items)
	s.Items = list.Items()
	return MaterialListView{
		Session:          s,
		Supplier:         supplier,
		SuggestionListID: supplier.SuggestionListID(),
		Suggestions:      ix.Suggestions(),
		Summary:          materiallist.Summarize(s.Items, u.taxRate),
	}
}
