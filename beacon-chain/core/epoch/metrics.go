package epoch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rewardsProcessingTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "epoch_rewards_processing_milliseconds",
		Help:    "Time to apply attestation rewards and penalties to a state",
		Buckets: []float64{1, 5, 10, 50, 100, 250, 500, 1000, 5000},
	})
	rewardsAbortedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "epoch_rewards_aborted_total",
		Help: "Count of rewards and penalties applications that returned an error",
	})
	rewardsEstimatedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "epoch_rewards_estimated_validators_total",
		Help: "Count of validators covered by attestation reward estimates",
	})
)
