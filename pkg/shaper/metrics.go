package shaper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	classifiedFrames *prometheus.CounterVec
	shapeDuration    *prometheus.HistogramVec
	transformErrors  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		classifiedFrames: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "paneldata",
			Subsystem: "shaper",
			Name:      "classified_frames_total",
			Help:      "Total number of frames classified, per visualization group.",
		}, []string{"vis_type"}),
		shapeDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "paneldata",
			Subsystem: "shaper",
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each shaping stage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		transformErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "paneldata",
			Subsystem: "shaper",
			Name:      "transform_errors_total",
			Help:      "Total number of table transform failures.",
		}),
	}
}
