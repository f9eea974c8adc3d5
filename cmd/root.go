package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/votedapp/sponsorvote/config"
	"github.com/votedapp/sponsorvote/config/presets"
)

// AddFlags adds the flags shared by all executables to flagSet and returns a pointer to the
// config file path.
func AddFlags(flagSet *pflag.FlagSet, conf *config.Config) (configPath *string) {
	configPath = flagSet.StringP("config", "c", "", "load configuration from file (toml, json or yaml)")
	flagSet.StringVarP(&conf.Preset, "preset", "p", conf.Preset,
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))

	/** ======================== Logging Flags ========================== **/

	flagSet.StringVar(&conf.Logging.Encoder, "log-encoder", conf.Logging.Encoder, "log encoder, console or json")
	flagSet.StringVar(&conf.Logging.Level, "log-level", conf.Logging.Level, "log level")

	/** ======================== Poll Flags ========================== **/

	flagSet.Var(addressValue{&conf.Poll.PackageID}, "package-id", "id of the voting package")
	flagSet.Var(addressValue{&conf.Poll.PollID}, "poll-id", "id of the poll object")
	flagSet.StringVar(&conf.Poll.Module, "vote-module", conf.Poll.Module, "module of the vote entry point")
	flagSet.StringVar(&conf.Poll.Function, "vote-function", conf.Poll.Function, "vote entry point")
	flagSet.DurationVar(&conf.Poll.SyncInterval, "sync-interval", conf.Poll.SyncInterval,
		"interval between poll refreshes")

	/** ======================== Ledger Flags ========================== **/

	flagSet.StringVar(&conf.Ledger.URL, "rpc-url", conf.Ledger.URL, "full node json-rpc url")
	flagSet.IntVar(&conf.Ledger.MaxRetries, "rpc-max-retries", conf.Ledger.MaxRetries,
		"retries of failed ledger reads")

	/** ======================== Metrics Flags ========================== **/

	flagSet.BoolVar(&conf.Metrics.Enabled, "metrics", conf.Metrics.Enabled, "serve prometheus metrics")
	flagSet.StringVar(&conf.Metrics.Listen, "metrics-listen", conf.Metrics.Listen, "metrics listen address")
	flagSet.StringVar(&conf.Metrics.PushURL, "metrics-push", conf.Metrics.PushURL, "push metrics to url")
	return configPath
}

// AddSponsorFlags adds the flags of the sponsorship forwarding service.
func AddSponsorFlags(flagSet *pflag.FlagSet, conf *config.Config) {
	flagSet.StringVar(&conf.Sponsor.Listen, "listen", conf.Sponsor.Listen, "address for listening")
	flagSet.StringVar(&conf.Sponsor.Upstream.URL, "api-url", conf.Sponsor.Upstream.URL, "sponsorship api url")
	flagSet.StringVar(&conf.Sponsor.Upstream.Network, "network", conf.Sponsor.Upstream.Network,
		"network transactions are sponsored on")
	flagSet.StringVar(&conf.Sponsor.AllowedTarget, "allowed-target", conf.Sponsor.AllowedTarget,
		"only entry point sponsored transactions may call, pkg::module::function. defaults to the vote target")
	flagSet.StringSliceVar(&conf.Sponsor.AllowedOrigins, "allowed-origins", conf.Sponsor.AllowedOrigins,
		"origins allowed to call the service from a browser")
	flagSet.Float64Var(&conf.Sponsor.RateLimit, "rate-limit", conf.Sponsor.RateLimit,
		"sponsorships per second per sender, 0 disables the limit")
	flagSet.IntVar(&conf.Sponsor.RateBurst, "rate-burst", conf.Sponsor.RateBurst, "sponsorship burst per sender")
}

// AddVoterFlags adds the flags of the voter cli.
func AddVoterFlags(flagSet *pflag.FlagSet, conf *config.Config) {
	flagSet.StringVarP(&conf.Voter.KeyFile, "key", "k", conf.Voter.KeyFile, "hex encoded ed25519 key file")
	flagSet.StringVar(&conf.Voter.SponsorURL, "sponsor-url", conf.Voter.SponsorURL, "sponsor service url")
	flagSet.BoolVar(&conf.Voter.Confirm, "confirm", conf.Voter.Confirm, "ask before signing")
}

// AddDevnetFlags adds the flags of the ledger simulator.
func AddDevnetFlags(flagSet *pflag.FlagSet, conf *config.Config) {
	flagSet.StringVar(&conf.Devnet.Listen, "listen", conf.Devnet.Listen, "address for listening")
	flagSet.StringVar(&conf.Devnet.Question, "question", conf.Devnet.Question, "question of the seeded poll")
	flagSet.StringSliceVar(&conf.Devnet.Options, "options", conf.Devnet.Options, "options of the seeded poll")
	flagSet.DurationVar(&conf.Devnet.Sponsor.Expiry, "expiry", conf.Devnet.Sponsor.Expiry,
		"lifetime of a sponsorship")
}
