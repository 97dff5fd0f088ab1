package observability

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "vending"

// Metrics holds the collectors fed by the machine lifecycle hooks.
type Metrics struct {
	CoinsInserted  prometheus.Counter
	CoinsReturned  prometheus.Counter
	Sales          *prometheus.CounterVec
	Rejections     *prometheus.CounterVec
	IssuesReported *prometheus.CounterVec
	Stock          *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CoinsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coins_inserted_total",
			Help:      "Total number of coins inserted",
		}),
		CoinsReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coins_returned_total",
			Help:      "Total number of coins handed back",
		}),
		Sales: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Total number of items sold",
		}, []string{"item"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Total number of refused selections",
		}, []string{"reason"}),
		IssuesReported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issues_reported_total",
			Help:      "Total number of service requests",
		}, []string{"result"}),
		Stock: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stock",
			Help:      "Items left per slot",
		}, []string{"item"}),
	}

	if reg != nil {
		reg.MustRegister(m.CoinsInserted, m.CoinsReturned, m.Sales, m.Rejections, m.IssuesReported, m.Stock)
	}
	return m
}

// SetStock seeds the stock gauges from the catalog, before any sale happens.
func (m *Metrics) SetStock(c domain.Catalog) {
	m.Stock.WithLabelValues(c.A.Name).Set(float64(c.A.Stock))
	m.Stock.WithLabelValues(c.B.Name).Set(float64(c.B.Stock))
}

// Hooks returns lifecycle hooks recording into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCoinsInserted: func(_ context.Context, e *domain.CoinEvent) {
			m.CoinsInserted.Add(float64(e.Amount))
		},
		OnCoinsReturned: func(_ context.Context, e *domain.CoinEvent) {
			m.CoinsReturned.Add(float64(e.Amount))
		},
		OnSale: func(_ context.Context, e *domain.SaleEvent) {
			m.Sales.WithLabelValues(e.Item).Inc()
			m.Stock.WithLabelValues(e.Item).Set(float64(e.Stock))
		},
		OnRejected: func(_ context.Context, e *domain.RejectEvent) {
			m.Rejections.WithLabelValues(string(e.Reason)).Inc()
		},
		OnIssueReported: func(_ context.Context, e *domain.IssueEvent) {
			result := "ok"
			if e.Err != nil {
				result = "error"
			}
			m.IssuesReported.WithLabelValues(result).Inc()
		},
	}
}

// Report writes a plain-text summary of every gathered sample, one per line,
// sorted by metric name.
func Report(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), formatLabels(metric.GetLabel()), sampleValue(mf.GetType(), metric)))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func sampleValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue()
	case dto.MetricType_SUMMARY:
		return float64(m.GetSummary().GetSampleCount())
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	}
	return 0
}
