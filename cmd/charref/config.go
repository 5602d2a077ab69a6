package main

import (
	"encoding"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/charref"
)

const envPrefix = "CHARREF"

// config holds the option values shared by the subcommands. Later sources
// override earlier ones: defaults, config file, environment, flags.
type config struct {
	Mode    charref.Mode    `yaml:"mode" envconfig:"MODE"`
	Level   charref.Level   `yaml:"level" envconfig:"LEVEL"`
	Numeric charref.Numeric `yaml:"numeric" envconfig:"NUMERIC"`
	Scope   charref.Scope   `yaml:"scope" envconfig:"SCOPE"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config{}, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, errors.Wrap(err, "read environment")
	}
	return cfg, nil
}

// override copies the flag values whose names changed reports as set.
func (c *config) override(flags config, changed func(name string) bool) {
	if changed("mode") {
		c.Mode = flags.Mode
	}
	if changed("level") {
		c.Level = flags.Level
	}
	if changed("numeric") {
		c.Numeric = flags.Numeric
	}
	if changed("scope") {
		c.Scope = flags.Scope
	}
}

type textValue interface {
	encoding.TextUnmarshaler
	fmt.Stringer
}

// enumFlag adapts an option enum to pflag.Value.
type enumFlag struct {
	target textValue
	kind   string
}

func textFlag(target textValue, kind string) *enumFlag {
	return &enumFlag{target: target, kind: kind}
}

func (f *enumFlag) String() string {
	if f.target == nil {
		return ""
	}
	return f.target.String()
}

func (f *enumFlag) Set(s string) error { return f.target.UnmarshalText([]byte(s)) }

func (f *enumFlag) Type() string { return f.kind }

func newLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}
