package match

import (
	"github.com/prometheus/client_golang/prometheus"
)

var roundsPlayed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fairhand_rounds_played_total",
		Help: "Total resolved rounds, labelled by outcome from the player's perspective",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(roundsPlayed)
}
