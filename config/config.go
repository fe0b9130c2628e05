package config

import (
	"os"
	"path/filepath"

	"github.com/hexview/hexview/dump"
	"github.com/hexview/hexview/numeric"
	"github.com/hexview/hexview/state"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the main Configuration Struct for hexview.
type Config struct {
	Session  Session `yaml:"session"`
	LogLevel string  `yaml:"log_level"`
}

// Session defines the view a new inspection session starts with.
type Session struct {
	Type   string  `yaml:"type"`
	Order  string  `yaml:"order"`
	Row    uint32  `yaml:"row"`
	Length *uint32 `yaml:"length,omitempty"`
	Prompt string  `yaml:"prompt"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Session: Session{
			Type:   numeric.U8.String(),
			Order:  "native",
			Row:    state.DefaultRow,
			Prompt: "hexview> ",
		},
		LogLevel: "warning",
	}
}

// DefaultPath is where the config lives unless a path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "hexview", "config.yaml")
}

// Read initializes a config from a file, starting from Default.
func Read(path string) (result Config, err error) {
	result = Default()
	in, err := os.ReadFile(path)
	if err != nil {
		return result, errors.Wrapf(err, "read config %s", path)
	}
	if err = yaml.Unmarshal(in, &result); err != nil {
		return result, errors.Wrapf(err, "parse config %s", path)
	}
	return result, nil
}

// Write stores cfg at path, creating parent directories.
func Write(path string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return errors.Wrapf(err, "create config directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, out, 0644), "write config %s", path)
}

// View builds the starting view described by the session section. host
// is the byte order "native" resolves to.
func (s Session) View(host numeric.Order) (state.View, error) {
	v := state.New(host)
	if s.Type != "" {
		k, ok := numeric.ParseKind(s.Type)
		if !ok {
			return v, errors.Errorf("unknown type %q in config", s.Type)
		}
		v.Kind = k
	}
	switch s.Order {
	case "", "native", "host":
	default:
		o, err := numeric.ParseOrder(s.Order)
		if err != nil {
			return v, errors.Wrap(err, "config order")
		}
		v.Order = o
	}
	if s.Row > 0 {
		if v.SetRow(s.Row) {
			return v, errors.Errorf("row %d in config exceeds %d", s.Row, dump.MaxRow)
		}
	}
	v.SetLength(s.Length)
	return v, nil
}
