package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics() (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// AdapterMetrics carries the operational counters for the message pipeline.
// A nil *AdapterMetrics is valid and records nothing, so callers never need
// to branch on whether metrics are wired.
type AdapterMetrics struct {
	parsed        metric.Int64Counter
	parseFailures metric.Int64Counter
	reports       metric.Int64Counter
}

// NewAdapterMetrics registers the adapter counters on the given provider.
func NewAdapterMetrics(provider *sdkmetric.MeterProvider) (*AdapterMetrics, error) {
	meter := provider.Meter("message-adapter")

	parsed, err := meter.Int64Counter("iso20022_messages_parsed_total",
		metric.WithDescription("Inbound pacs.008 messages successfully parsed"))
	if err != nil {
		return nil, err
	}
	parseFailures, err := meter.Int64Counter("iso20022_parse_failures_total",
		metric.WithDescription("Inbound messages rejected before extraction, by failure kind"))
	if err != nil {
		return nil, err
	}
	reports, err := meter.Int64Counter("iso20022_status_reports_total",
		metric.WithDescription("pacs.002 status reports generated, by transaction status"))
	if err != nil {
		return nil, err
	}

	return &AdapterMetrics{
		parsed:        parsed,
		parseFailures: parseFailures,
		reports:       reports,
	}, nil
}

func (m *AdapterMetrics) MessageParsed(ctx context.Context) {
	if m == nil {
		return
	}
	m.parsed.Add(ctx, 1)
}

func (m *AdapterMetrics) ParseFailed(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.parseFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *AdapterMetrics) ReportGenerated(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.reports.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}
