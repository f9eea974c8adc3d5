// Package config contains the configuration of the sponsor service, the voter cli and the
// local devnet.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/votedapp/sponsorvote/ballot"
	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/enoki"
	"github.com/votedapp/sponsorvote/ledger"
	"github.com/votedapp/sponsorvote/ledgersim"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/metrics"
	"github.com/votedapp/sponsorvote/pollsync"
	"github.com/votedapp/sponsorvote/sponsor"
)

const (
	// EnvPrefix of environment variables overriding config keys, e.g. SPONSORVOTE_POLL_POLL_ID.
	EnvPrefix = "SPONSORVOTE"

	apiKeyKey = "sponsor.api-key"
)

var ErrNoPoll = errors.New("poll id is not set")

// Config is the top level configuration.
type Config struct {
	Preset  string         `mapstructure:"preset"`
	Sponsor sponsor.Config `mapstructure:"sponsor"`
	Ledger  ledger.Config  `mapstructure:"ledger"`
	Poll    PollConfig     `mapstructure:"poll"`
	Voter   VoterConfig    `mapstructure:"voter"`
	Devnet  DevnetConfig   `mapstructure:"devnet"`
	Logging log.Config     `mapstructure:"logging"`
	Metrics metrics.Config `mapstructure:"metrics"`
}

// PollConfig locates the poll and the vote entry point.
type PollConfig struct {
	PackageID    types.Address `mapstructure:"package-id"`
	PollID       types.Address `mapstructure:"poll-id"`
	Module       string        `mapstructure:"module"`
	Function     string        `mapstructure:"function"`
	SyncInterval time.Duration `mapstructure:"sync-interval"`
}

// Target is the vote entry point.
func (p PollConfig) Target() types.MoveCallTarget {
	return types.MoveCallTarget{Package: p.PackageID, Module: p.Module, Function: p.Function}
}

// VoterConfig is used by the voter cli.
type VoterConfig struct {
	KeyFile    string `mapstructure:"key-file"`
	SponsorURL string `mapstructure:"sponsor-url"`
	// Confirm asks on the terminal before every signature.
	Confirm bool `mapstructure:"confirm"`
}

// DevnetConfig of the local ledger simulator.
type DevnetConfig struct {
	Listen   string                  `mapstructure:"listen"`
	Sponsor  ledgersim.SponsorConfig `mapstructure:",squash"`
	Question string                  `mapstructure:"question"`
	Options  []string                `mapstructure:"options"`
}

func DefaultConfig() Config {
	return Config{
		Sponsor: sponsor.DefaultConfig(),
		Ledger:  ledger.DefaultConfig(),
		Poll: PollConfig{
			Module:       ballot.DefaultModule,
			Function:     ballot.DefaultFunction,
			SyncInterval: pollsync.DefaultInterval,
		},
		Voter: VoterConfig{
			KeyFile:    "./voter.key",
			SponsorURL: "http://localhost:3000",
		},
		Devnet: DevnetConfig{
			Listen:   "127.0.0.1:9000",
			Sponsor:  ledgersim.DefaultSponsorConfig(),
			Question: "Which option do you prefer?",
			Options:  []string{"Option A", "Option B"},
		},
		Logging: log.DefaultConfig(),
		Metrics: metrics.DefaultConfig(),
	}
}

// Validate checks what every command needs.
func (c *Config) Validate() error {
	if c.Poll.PollID.IsEmpty() {
		return ErrNoPoll
	}
	if c.Poll.Module == "" || c.Poll.Function == "" {
		return fmt.Errorf("vote target %s is incomplete", c.Poll.Target())
	}
	if c.Poll.SyncInterval <= 0 {
		return fmt.Errorf("sync interval must be positive: %v", c.Poll.SyncInterval)
	}
	return nil
}

// New returns a viper instance reading files from fs and binding every config key to an
// environment variable. The api key is also read from ENOKI_PRIVATE_API_KEY.
func New(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, key := range Keys() {
		_ = v.BindEnv(key)
	}
	_ = v.BindEnv(apiKeyKey, EnvPrefix+"_SPONSOR_API_KEY", enoki.APIKeyEnv)
	return v
}

// ReadFile reads a toml, json or yaml config file into v. An empty path reads nothing.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	return nil
}

// Unmarshal decodes the settings of v on top of cfg.
func Unmarshal(v *viper.Viper, cfg *Config) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		WithIgnoreUntagged(),
		WithErrorUnused(),
	}
	if err := v.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

func WithIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}

// Keys lists every leaf key of Config in dotted form, e.g. "poll.poll-id".
func Keys() []string {
	return keys("", reflect.TypeOf(Config{}))
}

func keys(prefix string, t reflect.Type) []string {
	var out []string
	for i := range t.NumField() {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" && opts != "squash" {
			continue
		}
		key := prefix
		if name != "" {
			key = strings.TrimPrefix(prefix+"."+name, ".")
		}
		if f.Type.Kind() == reflect.Struct {
			out = append(out, keys(key, f.Type)...)
			continue
		}
		out = append(out, key)
	}
	return out
}
