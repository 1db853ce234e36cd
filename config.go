package gosorted

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind identifies a container kind the checker knows how to verify.
type Kind int

const (
	kindInvalid Kind = iota
	KindGroup        // grouped const/var declarations
	KindStruct       // struct field lists
	KindFile         // a file's top-level declarations
	KindSwitch       // switch and type-switch case clauses
)

func (k Kind) String() string {
	v, err := k.MarshalText()
	if err != nil {
		return fmt.Sprintf("kind-invalid(%d)", int(k))
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*Kind)(nil)

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "group":
		*k = KindGroup
		return nil
	case "struct":
		*k = KindStruct
		return nil
	case "file":
		*k = KindFile
		return nil
	case "switch":
		*k = KindSwitch
		return nil
	default:
		return fmt.Errorf("unknown container kind %q", b)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindGroup:
		return []byte("group"), nil
	case KindStruct:
		return []byte("struct"), nil
	case KindFile:
		return []byte("file"), nil
	case KindSwitch:
		return []byte("switch"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", int(k))
	}
}

// Config controls which container kinds are checked and how containers
// are selected.
type Config struct {
	// Checks lists the enabled container kinds. Empty means all of them.
	Checks []Kind `yaml:"checks"`

	// RequireMarker, when true (the default), limits checking to
	// containers carrying a //sorted:check marker. When false every
	// container of an enabled kind is checked.
	RequireMarker *bool `yaml:"require-marker"`
}

// DefaultConfig enables all container kinds in marker-required mode.
func DefaultConfig() *Config {
	return &Config{}
}

// Enabled reports whether containers of the given kind are checked.
func (c *Config) Enabled(k Kind) bool {
	if len(c.Checks) == 0 {
		return true
	}
	for _, v := range c.Checks {
		if v == k {
			return true
		}
	}

	return false
}

// MarkerRequired reports whether containers must opt in with a marker.
func (c *Config) MarkerRequired() bool {
	if c.RequireMarker == nil {
		return true
	}

	return *c.RequireMarker
}

// LoadConfig reads a YAML configuration file. Unknown keys are
// rejected; an empty file yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}
