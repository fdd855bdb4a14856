package sorted

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NullPlacement is an enumeration of possible positions of null values in the list.
type NullPlacement uint8

const (
	// NullsTrailing places null values after all present values.
	NullsTrailing NullPlacement = iota
	// NullsLeading places null values before all present values.
	NullsLeading
)

func (p NullPlacement) String() string {
	switch p {
	case NullsTrailing:
		return "trailing"
	case NullsLeading:
		return "leading"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p NullPlacement) MarshalText() ([]byte, error) {
	if p != NullsTrailing && p != NullsLeading {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlacement, p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Empty text selects the default placement.
func (p *NullPlacement) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "trailing", "last":
		*p = NullsTrailing
	case "leading", "first":
		*p = NullsLeading
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPlacement, text)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p NullPlacement) MarshalYAML() (any, error) {
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *NullPlacement) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlacement, err)
	}
	return p.UnmarshalText([]byte(s))
}

// Config contains construction options of the sorted list.
// Policy derived from the config is fixed for the list lifetime.
type Config struct {
	// NullPlacement specifies where null values are kept.
	NullPlacement NullPlacement `yaml:"null_placement"`
	// Reversed switches present values to descending order. Null placement is not affected.
	Reversed bool `yaml:"reversed"`
	// BatchSize limits amount of elements copied by a single Spliterator.TrySplit call.
	// Zero means default.
	BatchSize int `yaml:"batch_size"`
	// Reserved specifies initial capacity of the node arena. Zero means default.
	Reserved int `yaml:"reserved"`
}

// DefaultConfig returns config with trailing nulls and ascending order.
func DefaultConfig() Config {
	return Config{
		NullPlacement: NullsTrailing,
		BatchSize:     defaultBatchSize,
		Reserved:      defaultReservedNodes,
	}
}

// LoadConfig parses YAML document into Config.
// Omitted fields keep their default values.
func LoadConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks config values.
func (c Config) Validate() error {
	if c.NullPlacement != NullsTrailing && c.NullPlacement != NullsLeading {
		return fmt.Errorf("%w: null placement %d", ErrInvalidConfig, c.NullPlacement)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("%w: negative batch size %d", ErrInvalidConfig, c.BatchSize)
	}
	if c.Reserved < 0 {
		return fmt.Errorf("%w: negative reserved size %d", ErrInvalidConfig, c.Reserved)
	}
	return nil
}

func (c Config) batchSize() int {
	if c.BatchSize <= 0 {
		return defaultBatchSize
	}
	return c.BatchSize
}

func (c Config) reserved() int {
	if c.Reserved <= 0 {
		return defaultReservedNodes
	}
	return c.Reserved
}
