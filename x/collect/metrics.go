package collect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initializationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "collect",
			Name:      "initializations_total",
			Help:      "Number of processed publication initializations.",
		},
		[]string{"status"},
	)

	collectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "collect",
			Name:      "collections_total",
			Help:      "Number of processed collections.",
		},
		[]string{"status"},
	)

	movementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "collect",
			Name:      "movements_total",
			Help:      "Number of executed token movements.",
		},
		[]string{"role", "sink"},
	)
)

func status(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
