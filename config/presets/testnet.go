package presets

import (
	"github.com/votedapp/sponsorvote/config"
	"github.com/votedapp/sponsorvote/log"
)

func init() {
	register("testnet", testnet())
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.Sponsor.Upstream.Network = "testnet"
	conf.Sponsor.Listen = "0.0.0.0:3000"
	conf.Sponsor.RateLimit = 0.1
	conf.Sponsor.RateBurst = 2

	conf.Ledger.MaxRetries = 5

	conf.Logging.Encoder = log.JSONLogEncoder
	conf.Metrics.Enabled = true
	return conf
}
