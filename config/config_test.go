package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/votedapp/sponsorvote/common/types"
)

func load(t *testing.T, fs afero.Fs, path string) (Config, error) {
	t.Helper()
	v := New(fs)
	if err := ReadFile(v, path); err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	err := Unmarshal(v, &cfg)
	return cfg, err
}

func TestKeys(t *testing.T) {
	keys := Keys()
	for _, key := range []string{
		"preset",
		"sponsor.listen",
		"sponsor.api-url",
		"sponsor.api-key",
		"sponsor.network",
		"sponsor.request-timeout",
		"sponsor.allowed-origins",
		"ledger.rpc-url",
		"poll.poll-id",
		"poll.sync-interval",
		"voter.key-file",
		"devnet.expiry",
		"logging.level",
		"metrics.push-url",
	} {
		require.Contains(t, keys, key)
	}
	require.NotContains(t, keys, "sponsor.upstream")
}

func TestDefaults(t *testing.T) {
	cfg, err := load(t, afero.NewMemMapFs(), "")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.ErrorIs(t, cfg.Validate(), ErrNoPoll)
}

func TestReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/sponsorvote/config.toml", []byte(`
[sponsor]
listen = "0.0.0.0:4000"
network = "devnet"
allowed-origins = ["https://vote.example"]
rate-limit = 0.5

[poll]
package-id = "0x9942"
poll-id = "0x35a3"
sync-interval = "10s"

[logging]
level = "debug"
`), 0o600))

	cfg, err := load(t, fs, "/etc/sponsorvote/config.toml")
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:4000", cfg.Sponsor.Listen)
	require.Equal(t, "devnet", cfg.Sponsor.Upstream.Network)
	require.Equal(t, []string{"https://vote.example"}, cfg.Sponsor.AllowedOrigins)
	require.InDelta(t, 0.5, cfg.Sponsor.RateLimit, 1e-9)
	require.Equal(t, types.MustStringToAddress("0x9942"), cfg.Poll.PackageID)
	require.Equal(t, types.MustStringToAddress("0x35a3"), cfg.Poll.PollID)
	require.Equal(t, 10*time.Second, cfg.Poll.SyncInterval)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, DefaultConfig().Ledger, cfg.Ledger)
	require.NoError(t, cfg.Validate())
}

func TestReadFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := load(t, fs, "/missing.toml")
	require.ErrorContains(t, err, "read config file /missing.toml")

	require.NoError(t, afero.WriteFile(fs, "/unknown.toml", []byte("[poll]\nunknown-key = 1\n"), 0o600))
	_, err = load(t, fs, "/unknown.toml")
	require.ErrorContains(t, err, "unknown-key")

	require.NoError(t, afero.WriteFile(fs, "/bad.toml", []byte("[poll]\npoll-id = \"35a3\"\n"), 0o600))
	_, err = load(t, fs, "/bad.toml")
	require.ErrorContains(t, err, types.ErrMissingPrefix.Error())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("SPONSORVOTE_POLL_POLL_ID", "0x35a3")
	t.Setenv("SPONSORVOTE_SPONSOR_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SPONSORVOTE_LEDGER_MAX_RETRIES", "7")
	t.Setenv("ENOKI_PRIVATE_API_KEY", "enoki_private_key")

	cfg, err := load(t, afero.NewMemMapFs(), "")
	require.NoError(t, err)
	require.Equal(t, types.MustStringToAddress("0x35a3"), cfg.Poll.PollID)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Sponsor.AllowedOrigins)
	require.Equal(t, 7, cfg.Ledger.MaxRetries)
	require.Equal(t, "enoki_private_key", cfg.Sponsor.Upstream.APIKey)
}

func TestPrefixedAPIKeyWins(t *testing.T) {
	t.Setenv("SPONSORVOTE_SPONSOR_API_KEY", "prefixed")
	t.Setenv("ENOKI_PRIVATE_API_KEY", "plain")
	cfg, err := load(t, afero.NewMemMapFs(), "")
	require.NoError(t, err)
	require.Equal(t, "prefixed", cfg.Sponsor.Upstream.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Poll.PollID = types.MustStringToAddress("0x1")
	require.NoError(t, cfg.Validate())

	cfg.Poll.Function = ""
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Poll.PollID = types.MustStringToAddress("0x1")
	cfg.Poll.SyncInterval = 0
	require.Error(t, cfg.Validate())
}
