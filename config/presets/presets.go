// Package presets holds named configurations that replace the defaults before a config
// file and flags are applied.
package presets

import (
	"fmt"
	"sort"

	"github.com/votedapp/sponsorvote/config"
)

var presets = map[string]config.Config{}

func register(name string, conf config.Config) {
	if _, exists := presets[name]; exists {
		panic(fmt.Sprintf("preset with name %s already exists", name))
	}
	conf.Preset = name
	presets[name] = conf
}

// Options returns the names of all presets.
func Options() []string {
	rst := make([]string, 0, len(presets))
	for name := range presets {
		rst = append(rst, name)
	}
	sort.Strings(rst)
	return rst
}

// Get returns a copy of the named preset.
func Get(name string) (config.Config, error) {
	conf, exists := presets[name]
	if !exists {
		return config.Config{}, fmt.Errorf("preset %s doesn't exist. select one of %v", name, Options())
	}
	conf.Sponsor.AllowedOrigins = append([]string(nil), conf.Sponsor.AllowedOrigins...)
	conf.Devnet.Options = append([]string(nil), conf.Devnet.Options...)
	return conf, nil
}
