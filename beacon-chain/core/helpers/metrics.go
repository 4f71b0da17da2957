package helpers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceFloorHitCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "validator_balance_decrease_floored_total",
		Help: "Increased when a balance decrease is clamped at zero",
	})
)
