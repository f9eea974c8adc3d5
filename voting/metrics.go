package voting

import "github.com/votedapp/sponsorvote/metrics"

var attempts = metrics.NewCounter(
	"attempts_total",
	"voting",
	"Vote attempts by outcome and the phase they ended in",
	[]string{"outcome", "phase"},
)
