// Package metrics holds the Prometheus collectors of the publishing engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "article_publisher"

	ResultOK         = "ok"
	ResultValidation = "validation_failed"
	ResultNotFound   = "not_found"
	ResultFailed     = "failed"

	// LabelUnknown replaces label values that did not match a known scope or mode.
	LabelUnknown = "unknown"

	ContentHit      = "hit"
	ContentInserted = "inserted"
	ContentConflict = "conflict"
)

var (
	PublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publisher",
			Name:      "publish_total",
			Help:      "Total number of publish operations by scope, mode and result",
		},
		[]string{"scope", "mode", "result"},
	)

	PublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "publisher",
			Name:      "publish_duration_seconds",
			Help:      "Publish pipeline duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"scope", "mode"},
	)

	ContentItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content_store",
			Name:      "resolutions_total",
			Help:      "Content item resolutions by outcome: hit, inserted or conflict",
		},
		[]string{"outcome"},
	)

	ListTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lister",
			Name:      "list_total",
			Help:      "Total number of listing requests by scope",
		},
		[]string{"scope"},
	)
)
