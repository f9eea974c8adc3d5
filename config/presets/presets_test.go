package presets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/votedapp/sponsorvote/config"
	"github.com/votedapp/sponsorvote/ledgersim"
)

func TestOptions(t *testing.T) {
	require.Equal(t, []string{"devnet", "testnet"}, Options())
	_, err := Get("mainnet")
	require.ErrorContains(t, err, "doesn't exist")
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range Options() {
		t.Run(name, func(t *testing.T) {
			conf, err := Get(name)
			require.NoError(t, err)
			require.Equal(t, name, conf.Preset)
			if name == "devnet" {
				require.NoError(t, conf.Validate())
			}
		})
	}
}

func TestDevnetPointsAtSimulator(t *testing.T) {
	conf, err := Get("devnet")
	require.NoError(t, err)
	require.Equal(t, conf.Ledger.URL, conf.Sponsor.Upstream.URL)
	require.Equal(t, conf.Devnet.Sponsor.APIKey, conf.Sponsor.Upstream.APIKey)
	require.Equal(t, ledgersim.FirstPollID(DevnetPackage), conf.Poll.PollID)
	require.Equal(t, conf.Poll.Target().String(), conf.Sponsor.AllowedTarget)
}

func TestGetReturnsCopy(t *testing.T) {
	conf, err := Get("devnet")
	require.NoError(t, err)
	conf.Devnet.Options[0] = "changed"
	again, err := Get("devnet")
	require.NoError(t, err)
	require.NotEqual(t, "changed", again.Devnet.Options[0])
	require.Equal(t, config.DefaultConfig().Devnet.Options, again.Devnet.Options)
}
