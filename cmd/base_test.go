package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/votedapp/sponsorvote/config"
	"github.com/votedapp/sponsorvote/config/presets"
	"github.com/votedapp/sponsorvote/log"
)

const testConfig = `
preset = "devnet"

[logging]
level = "warn"

[poll]
sync-interval = "7s"

[sponsor]
allowed-origins = ["https://file.example"]
`

func parse(t *testing.T, conf *config.Config, args ...string) (*pflag.FlagSet, string) {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	path := AddFlags(flags, conf)
	AddSponsorFlags(flags, conf)
	require.NoError(t, flags.Parse(args))
	return flags, *path
}

func testFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/sponsorvote.toml", []byte(testConfig), 0o600))
	return fs
}

func TestLoadConfigPrecedence(t *testing.T) {
	conf := config.DefaultConfig()
	flags, path := parse(t, &conf,
		"--config", "/sponsorvote.toml",
		"--sync-interval", "9s",
		"--allowed-origins", "https://a.example,https://b.example",
	)
	require.NoError(t, LoadConfig(testFs(t), flags, &conf, path))

	// preset
	require.Equal(t, presets.DevnetPackage, conf.Poll.PackageID)
	require.Equal(t, "devnet", conf.Preset)
	// file over preset
	require.Equal(t, "warn", conf.Logging.Level)
	// flags over file
	require.Equal(t, 9*time.Second, conf.Poll.SyncInterval)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, conf.Sponsor.AllowedOrigins)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("SPONSORVOTE_LOGGING_LEVEL", "error")
	conf := config.DefaultConfig()
	flags, path := parse(t, &conf, "--config", "/sponsorvote.toml")
	require.NoError(t, LoadConfig(testFs(t), flags, &conf, path))
	require.Equal(t, "error", conf.Logging.Level)
	require.Equal(t, 7*time.Second, conf.Poll.SyncInterval)
}

func TestLoadConfigPresetFlag(t *testing.T) {
	conf := config.DefaultConfig()
	flags, path := parse(t, &conf, "--preset", "testnet", "--log-level", "debug")
	require.NoError(t, LoadConfig(afero.NewMemMapFs(), flags, &conf, path))

	expected, err := presets.Get("testnet")
	require.NoError(t, err)
	require.Equal(t, expected.Sponsor.Listen, conf.Sponsor.Listen)
	require.Equal(t, "debug", conf.Logging.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("unknown preset", func(t *testing.T) {
		conf := config.DefaultConfig()
		flags, path := parse(t, &conf, "--preset", "nope")
		err := LoadConfig(afero.NewMemMapFs(), flags, &conf, path)
		var fe *log.FatalError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, "ERR_BAD_FLAGS", fe.Code)
	})
	t.Run("missing file", func(t *testing.T) {
		conf := config.DefaultConfig()
		flags, path := parse(t, &conf, "--config", "/missing.toml")
		err := LoadConfig(afero.NewMemMapFs(), flags, &conf, path)
		var fe *log.FatalError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, "ERR_MALFORMED_CONFIG", fe.Code)
	})
}

func TestFail(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	err := log.ErrMissingAPIKey("ENOKI_PRIVATE_API_KEY")
	require.Equal(t, err, Fail(logger, err))
	require.Equal(t, 1, logs.FilterMessage("fatal error").Len())
	require.Equal(t, "ERR_MISSING_API_KEY", logs.All()[0].ContextMap()["code"])

	plain := errors.New("plain")
	require.Equal(t, plain, Fail(logger, plain))
	require.Equal(t, 1, logs.Len())
	require.NoError(t, Fail(logger, nil))
}
