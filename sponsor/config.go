package sponsor

import (
	"github.com/votedapp/sponsorvote/enoki"
)

// Config of the sponsorship forwarding service.
type Config struct {
	Listen   string       `mapstructure:"listen"`
	Upstream enoki.Config `mapstructure:",squash"`

	// AllowedTarget is the only entry point sponsored transactions may call.
	AllowedTarget  string   `mapstructure:"allowed-target"`
	AllowedOrigins []string `mapstructure:"allowed-origins"`

	// RateLimit is the number of sponsorships per second a single sender gets.
	RateLimit       float64 `mapstructure:"rate-limit"`
	RateBurst       int     `mapstructure:"rate-burst"`
	ReplayCacheSize int     `mapstructure:"replay-cache-size"`
}

func DefaultConfig() Config {
	return Config{
		Listen:          "127.0.0.1:3000",
		Upstream:        enoki.DefaultConfig(),
		AllowedOrigins:  []string{"*"},
		RateLimit:       0.2,
		RateBurst:       3,
		ReplayCacheSize: 4096,
	}
}
