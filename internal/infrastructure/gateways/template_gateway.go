package gateways

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"
	"plumbing_estimator/pkg/config"
	"plumbing_estimator/pkg/logger"
)

var ErrTemplateGatewayNotConfigured = errors.New("template gateway not configured")

// TemplateHTTPGateway posts templates to the template store as a form with
// template_name, product_data and project_info fields.
type TemplateHTTPGateway struct {
	client   *http.Client
	endpoint string
	log      *logger.Logger
	mockMode bool
}

var _ interfaces.ITemplateGateway = (*TemplateHTTPGateway)(nil)

func NewTemplateHTTPGateway(cfg config.GatewayConfig, log *logger.Logger) (*TemplateHTTPGateway, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Mock {
		log.Info(context.Background(), "[template][gateway] mock mode enabled")
		return &TemplateHTTPGateway{log: log, mockMode: true}, nil
	}
	endpoint := strings.TrimSpace(cfg.TemplateSaveURL)
	if endpoint == "" {
		return nil, ErrTemplateGatewayNotConfigured
	}
	return &TemplateHTTPGateway{
		client:   newHTTPClient(cfg.Timeout),
		endpoint: endpoint,
		log:      log,
	}, nil
}

func (g *TemplateHTTPGateway) SaveTemplate(ctx context.Context, req entities.TemplateSaveRequest) error {
	if g == nil {
		return ErrTemplateGatewayNotConfigured
	}
	ctx = g.log.WithFields(ctx, map[string]any{
		"template": req.TemplateName,
		"items":    len(req.Items),
	})
	if g.mockMode {
		g.log.Info(ctx, "[template][gateway] mock save")
		return nil
	}
	if g.client == nil {
		return ErrTemplateGatewayNotConfigured
	}

	form, err := templateForm(req)
	if err != nil {
		return err
	}
	resp, err := postForm(ctx, g.client, g.endpoint, form)
	if err != nil {
		g.log.Warn(g.log.WithField(ctx, "error", err.Error()), "[template][gateway] save failed")
		return fmt.Errorf("saving template: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	g.log.Debug(ctx, "[template][gateway] saved")
	return nil
}

func templateForm(req entities.TemplateSaveRequest) (url.Values, error) {
	productData, err := encodeItems(req.Items)
	if err != nil {
		return nil, err
	}
	form := url.Values{}
	form.Set("template_name", req.TemplateName)
	form.Set("product_data", productData)
	if req.ProjectInfo != nil {
		info, err := json.Marshal(req.ProjectInfo)
		if err != nil {
			return nil, fmt.Errorf("encoding project info: %w", err)
		}
		form.Set("project_info", string(info))
	}
	return form, nil
}
