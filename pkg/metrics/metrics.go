package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exposes the material list counters. A nil Recorder, or one built
// with a nil registerer, is a no-op.
type Recorder struct {
	sessions  prometheus.Counter
	autofill  *prometheus.CounterVec
	exports   *prometheus.CounterVec
	saves     *prometheus.CounterVec
	catalogue *prometheus.GaugeVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}
	sessions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "material_list_sessions_opened_total",
		Help: "Material list sessions opened.",
	})
	autofill := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "material_list_autofill_lookups_total",
		Help: "Catalog lookups performed by autofill, by supplier and result.",
	}, []string{"supplier", "result"})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "material_list_exports_total",
		Help: "PDF exports submitted, by include_price answer and result.",
	}, []string{"include_price", "result"})
	saves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "material_list_template_saves_total",
		Help: "Template save attempts by result.",
	}, []string{"result"})
	catalogue := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "catalog_index_entries",
		Help: "Distinct descriptions in the active catalog index per supplier.",
	}, []string{"supplier"})
	reg.MustRegister(sessions, autofill, exports, saves, catalogue)
	return &Recorder{
		sessions:  sessions,
		autofill:  autofill,
		exports:   exports,
		saves:     saves,
		catalogue: catalogue,
	}
}

func (r *Recorder) IncSessionOpened() {
	if r == nil || r.sessions == nil {
		return
	}
	r.sessions.Inc()
}

func (r *Recorder) ObserveAutofill(supplier string, hit bool) {
	if r == nil || r.autofill == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.autofill.WithLabelValues(normalizeLabel(supplier), result).Inc()
}

func (r *Recorder) ObserveExport(includePrice bool, err error) {
	if r == nil || r.exports == nil {
		return
	}
	answer := "no"
	if includePrice {
		answer = "yes"
	}
	r.exports.WithLabelValues(answer, resultLabel(err)).Inc()
}

func (r *Recorder) ObserveTemplateSave(result string) {
	if r == nil || r.saves == nil {
		return
	}
	r.saves.WithLabelValues(normalizeLabel(result)).Inc()
}

func (r *Recorder) SetCatalogEntries(supplier string, entries int) {
	if r == nil || r.catalogue == nil {
		return
	}
	r.catalogue.WithLabelValues(normalizeLabel(supplier)).Set(float64(entries))
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}
