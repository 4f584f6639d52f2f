// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentsAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docengine_documents_analyzed_total",
			Help: "Total number of documents analyzed, by module type and result source",
		},
		[]string{"module_type", "source"},
	)

	DocumentsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docengine_documents_generated_total",
			Help: "Total number of documents assembled, by module type and result source",
		},
		[]string{"module_type", "source"},
	)

	UploadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docengine_uploads_rejected_total",
			Help: "Total number of uploads rejected by the file type gate",
		},
		[]string{"reason"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "docengine_analysis_duration_seconds",
			Help: "Duration of document analysis in seconds",
		},
		[]string{"module_type"},
	)

	DocumentsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docengine_documents_saved_total",
			Help: "Total number of analyzed documents persisted, by destination",
		},
		[]string{"destination"},
	)
)
