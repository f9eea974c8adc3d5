package sponsor

import (
	"github.com/votedapp/sponsorvote/metrics"
)

const (
	subsystem = "sponsor"

	phaseSponsor = "sponsor"
	phaseExecute = "execute"

	outcomeOK       = "ok"
	outcomeFailed   = "failed"
	outcomeLimited  = "rate_limited"
	outcomeReplayed = "replayed"
)

var sponsorRequests = metrics.NewCounter(
	"requests_total",
	subsystem,
	"Sponsorship and execution requests by outcome",
	[]string{"phase", "outcome"},
)
