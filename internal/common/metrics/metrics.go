// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DesignsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "designs_generated_total",
			Help: "Total number of design documents synthesized",
		},
		[]string{"category"},
	)

	SynthesisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "design_synthesis_duration_seconds",
			Help: "Duration of design document synthesis in seconds",
		},
		[]string{"category"},
	)

	ProviderAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_provider_attempts_total",
			Help: "Requirement extraction attempts per provider tier",
		},
		[]string{"provider", "outcome"},
	)

	ExportRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "figma_export_requests_total",
			Help: "Figma export operations by outcome",
		},
		[]string{"operation", "outcome"},
	)
)
