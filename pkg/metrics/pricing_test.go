package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestPricingMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPricingMetrics(reg)

	metrics.ObserveDuration("calculate", 12*time.Millisecond)
	metrics.IncFailure("ADDON_CONFLICT")
	metrics.IncCacheHit()
	metrics.IncCacheMiss()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "pricing_calculation_failures", "code", "ADDON_CONFLICT"); err != nil || got != 1 {
		t.Fatalf("expected failure counter 1, got %v (err %v)", got, err)
	}
	if got, err := fetchCounterValue(mfs, "pricing_options_cache_hits", "", ""); err != nil || got != 1 {
		t.Fatalf("expected cache hit counter 1, got %v (err %v)", got, err)
	}
	if got, err := fetchHistogramCount(mfs, "pricing_calculation_duration_seconds", "operation", "calculate"); err != nil || got != 1 {
		t.Fatalf("expected one duration observation, got %v (err %v)", got, err)
	}
}

func TestPricingMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *PricingMetrics
	metrics.ObserveDuration("calculate", time.Second)
	metrics.IncFailure("NOT_FOUND")
	metrics.IncCacheHit()
	metrics.IncCacheMiss()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, labelKey, labelValue string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelKey == "" {
				return metric.GetCounter().GetValue(), nil
			}
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelKey && label.GetValue() == labelValue {
					return metric.GetCounter().GetValue(), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("metric %s not found", name)
}

func fetchHistogramCount(mfs []*dto.MetricFamily, name, labelKey, labelValue string) (uint64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelKey && label.GetValue() == labelValue {
					return metric.GetHistogram().GetSampleCount(), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("metric %s not found", name)
}
