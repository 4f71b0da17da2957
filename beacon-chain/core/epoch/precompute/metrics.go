package precompute

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validatorsRewardedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "epoch_validators_rewarded_total",
		Help: "Count of validators whose balance grew during rewards and penalties processing",
	})
	validatorsPenalizedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "epoch_validators_penalized_total",
		Help: "Count of validators whose balance shrank during rewards and penalties processing",
	})
	gweiRewardedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "epoch_rewards_gwei_total",
		Help: "Sum of flattened rewards applied to balances, in Gwei",
	})
	gweiPenalizedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "epoch_penalties_gwei_total",
		Help: "Sum of flattened penalties applied to balances, in Gwei",
	})
)
