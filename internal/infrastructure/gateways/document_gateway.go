package gateways

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"
	"plumbing_estimator/pkg/config"
	"plumbing_estimator/pkg/logger"
)

var ErrDocumentGatewayNotConfigured = errors.New("document gateway not configured")

const (
	defaultDocumentType = "application/pdf"
	defaultDocumentName = "material_list.pdf"
	maxDocumentBytes    = 32 << 20
)

var mockPDF = []byte("%PDF-1.4\n% material list\n%%EOF\n")

// DocumentHTTPGateway asks the document generator for a PDF of a material
// list. The request mirrors the export form: product_data, include_price
// (yes/no), contractor, address and date.
type DocumentHTTPGateway struct {
	client   *http.Client
	endpoint string
	log      *logger.Logger
	mockMode bool
}

var _ interfaces.IDocumentGateway = (*DocumentHTTPGateway)(nil)

func NewDocumentHTTPGateway(cfg config.GatewayConfig, log *logger.Logger) (*DocumentHTTPGateway, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Mock {
		log.Info(context.Background(), "[document][gateway] mock mode enabled")
		return &DocumentHTTPGateway{log: log, mockMode: true}, nil
	}
	endpoint := strings.TrimSpace(cfg.DocumentGeneratorURL)
	if endpoint == "" {
		return nil, ErrDocumentGatewayNotConfigured
	}
	return &DocumentHTTPGateway{
		client:   newHTTPClient(cfg.Timeout),
		endpoint: endpoint,
		log:      log,
	}, nil
}

func (g *DocumentHTTPGateway) RenderMaterialList(ctx context.Context, req entities.ExportRequest) (entities.Document, error) {
	if g == nil {
		return entities.Document{}, ErrDocumentGatewayNotConfigured
	}
	ctx = g.log.WithFields(ctx, map[string]any{
		"items":         len(req.Items),
		"include_price": req.IncludePrice,
	})
	if g.mockMode {
		g.log.Info(ctx, "[document][gateway] mock render")
		return entities.Document{
			ContentType: defaultDocumentType,
			Filename:    defaultDocumentName,
			Body:        append([]byte(nil), mockPDF...),
		}, nil
	}
	if g.client == nil {
		return entities.Document{}, ErrDocumentGatewayNotConfigured
	}

	form, err := exportForm(req)
	if err != nil {
		return entities.Document{}, err
	}
	resp, err := postForm(ctx, g.client, g.endpoint, form)
	if err != nil {
		g.log.Warn(g.log.WithField(ctx, "error", err.Error()), "[document][gateway] render failed")
		return entities.Document{}, fmt.Errorf("rendering document: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return entities.Document{}, fmt.Errorf("reading document: %w", err)
	}
	doc := entities.Document{
		ContentType: contentType(resp.Header.Get("Content-Type")),
		Filename:    filename(resp.Header.Get("Content-Disposition")),
		Body:        body,
	}
	g.log.Debug(g.log.WithField(ctx, "bytes", len(body)), "[document][gateway] rendered")
	return doc, nil
}

func exportForm(req entities.ExportRequest) (url.Values, error) {
	productData, err := encodeItems(req.Items)
	if err != nil {
		return nil, err
	}
	includePrice := "no"
	if req.IncludePrice {
		includePrice = "yes"
	}
	form := url.Values{}
	form.Set("product_data", productData)
	form.Set("include_price", includePrice)
	form.Set("contractor", req.ProjectInfo.Contractor)
	form.Set("address", req.ProjectInfo.Address)
	form.Set("date", req.ProjectInfo.Date)
	return form, nil
}

func contentType(header string) string {
	if strings.TrimSpace(header) == "" {
		return defaultDocumentType
	}
	return header
}

func filename(disposition string) string {
	if disposition == "" {
		return defaultDocumentName
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil || strings.TrimSpace(params["filename"]) == "" {
		return defaultDocumentName
	}
	return params["filename"]
}
