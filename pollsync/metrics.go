package pollsync

import "github.com/votedapp/sponsorvote/metrics"

const (
	subsystem = "pollsync"

	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

var (
	refreshes = metrics.NewCounter(
		"refreshes_total",
		subsystem,
		"Poll refreshes by outcome",
		[]string{"outcome"},
	)
	statusUnknown = metrics.NewCounter(
		"voter_status_unknown_total",
		subsystem,
		"Voter lookups that failed and fell back to not voted",
		[]string{},
	).WithLabelValues()
)
