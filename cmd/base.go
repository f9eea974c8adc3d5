// Package cmd holds what the sponsord, voter and devnet executables share: flags, config
// loading and logger setup.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/config"
	"github.com/votedapp/sponsorvote/config/presets"
	"github.com/votedapp/sponsorvote/log"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// VersionString is printed by --version.
func VersionString() string {
	return fmt.Sprintf("%s+%s+%s", Version, Branch, Commit)
}

// LoadConfig applies, in order: the preset, the config file, environment variables and the
// flags changed on the command line.
func LoadConfig(fs afero.Fs, flags *pflag.FlagSet, conf *config.Config, path string) error {
	restore := saveChanged(flags)

	v := config.New(fs)
	if err := config.ReadFile(v, path); err != nil {
		return log.ErrMalformedConfig(err)
	}
	preset := conf.Preset
	if len(preset) == 0 && v.IsSet("preset") {
		preset = v.GetString("preset")
	}
	if len(preset) > 0 {
		p, err := presets.Get(preset)
		if err != nil {
			return log.ErrBadFlags(err)
		}
		*conf = p
	}
	if err := config.Unmarshal(v, conf); err != nil {
		return log.ErrMalformedConfig(err)
	}
	if err := restore(); err != nil {
		return log.ErrBadFlags(err)
	}
	return nil
}

// saveChanged remembers the values of flags set on the command line so they can be
// applied again after the config file overwrote the fields they point to.
func saveChanged(flags *pflag.FlagSet) func() error {
	var restore []func() error
	flags.Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			vals := sv.GetSlice()
			restore = append(restore, func() error { return sv.Replace(vals) })
			return
		}
		val := f.Value.String()
		restore = append(restore, func() error { return f.Value.Set(val) })
	})
	return func() error {
		for _, r := range restore {
			if err := r(); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewLogger creates the process logger of conf.
func NewLogger(name string, conf *config.Config) (*zap.Logger, error) {
	logger, _, err := log.New(name, conf.Logging)
	if err != nil {
		return nil, log.ErrBadFlags(err)
	}
	return logger, nil
}

// Fail logs a fatal startup error with its code and returns it for cobra to print.
func Fail(logger *zap.Logger, err error) error {
	var fe *log.FatalError
	if errors.As(err, &fe) {
		logger.Error("fatal error", zap.Inline(fe))
	}
	return err
}
