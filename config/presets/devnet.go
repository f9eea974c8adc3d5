package presets

import (
	"time"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/config"
	"github.com/votedapp/sponsorvote/ledgersim"
)

// DevnetPackage is the voting package id of the local simulator.
var DevnetPackage = types.MustStringToAddress("0xde7")

func init() {
	register("devnet", devnet())
}

func devnet() config.Config {
	conf := config.DefaultConfig()
	simURL := "http://" + conf.Devnet.Listen

	conf.Poll.PackageID = DevnetPackage
	conf.Poll.PollID = ledgersim.FirstPollID(DevnetPackage)
	conf.Poll.SyncInterval = 2 * time.Second

	conf.Sponsor.Upstream.URL = simURL
	conf.Sponsor.Upstream.APIKey = conf.Devnet.Sponsor.APIKey
	conf.Sponsor.Upstream.Network = conf.Devnet.Sponsor.Network
	conf.Sponsor.AllowedTarget = conf.Poll.Target().String()
	conf.Sponsor.RateLimit = 0

	conf.Ledger.URL = simURL
	conf.Ledger.MaxRetries = 1
	conf.Ledger.RetryDelay = 100 * time.Millisecond

	conf.Voter.KeyFile = "./devnet-voter.key"
	conf.Logging.Level = "debug"
	return conf
}
