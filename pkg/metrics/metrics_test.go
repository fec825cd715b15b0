package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecorderExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	rec.IncSessionOpened()
	rec.ObserveAutofill("supply1", true)
	rec.ObserveAutofill("supply1", true)
	rec.ObserveAutofill("supply1", false)
	rec.ObserveExport(true, nil)
	rec.ObserveExport(false, errors.New("down"))
	rec.ObserveTemplateSave("invalid_name")
	rec.SetCatalogEntries("supply2", 42)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	checks := []struct {
		name   string
		labels map[string]string
		want   float64
	}{
		{"material_list_sessions_opened_total", nil, 1},
		{"material_list_autofill_lookups_total", map[string]string{"supplier": "supply1", "result": "hit"}, 2},
		{"material_list_autofill_lookups_total", map[string]string{"supplier": "supply1", "result": "miss"}, 1},
		{"material_list_exports_total", map[string]string{"include_price": "yes", "result": "success"}, 1},
		{"material_list_exports_total", map[string]string{"include_price": "no", "result": "failure"}, 1},
		{"material_list_template_saves_total", map[string]string{"result": "invalid_name"}, 1},
		{"catalog_index_entries", map[string]string{"supplier": "supply2"}, 42},
	}
	for _, c := range checks {
		got, err := fetchValue(mfs, c.name, c.labels)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("%s %v: expected %v, got %v", c.name, c.labels, c.want, got)
		}
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.IncSessionOpened()
	rec.ObserveAutofill("supply1", true)
	rec.ObserveExport(true, nil)
	rec.ObserveTemplateSave("saved")
	rec.SetCatalogEntries("supply1", 1)

	empty := NewRecorder(nil)
	empty.ObserveAutofill("supply1", false)
}

func fetchValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if !labelsMatch(m.GetLabel(), labels) {
				continue
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue(), nil
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("metric %s %v not found", name, labels)
}

func labelsMatch(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, p := range pairs {
		if want[p.GetName()] != p.GetValue() {
			return false
		}
	}
	return true
}
