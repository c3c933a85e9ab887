package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SamplesProcessed counts samples that went through the pipeline.
	SamplesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "samples_processed_total",
			Help: "Total number of stream samples processed",
		},
	)

	// AnomaliesDetected counts samples flagged as anomalous.
	AnomaliesDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anomalies_detected_total",
			Help: "Total number of anomalies detected",
		},
	)

	// AnomalyZScore observes the z-score of each flagged sample.
	AnomalyZScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "anomaly_zscore",
			Help:    "Z-score distribution of detected anomalies",
			Buckets: []float64{2, 3, 4, 6, 8, 12, 16, 24},
		},
	)
)
