package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EvalConfig holds the evaluation weights. Material is always scored;
// mobility and center control can be switched off independently.
type EvalConfig struct {
	Pawn   Score `yaml:"pawn"`
	Knight Score `yaml:"knight"`
	Bishop Score `yaml:"bishop"`
	Rook   Score `yaml:"rook"`
	Queen  Score `yaml:"queen"`
	King   Score `yaml:"king"`

	Mobility       bool  `yaml:"mobility"`
	MobilityWeight Score `yaml:"mobility_weight"`
	Center         bool  `yaml:"center"`
	CenterBonus    Score `yaml:"center_bonus"`
}

// OrderConfig weights moves for the default orderer.
type OrderConfig struct {
	CastleBonus     Score `yaml:"castle_bonus"`
	KingMovePenalty Score `yaml:"king_move_penalty"`
}

type Config struct {
	Depth      int           `yaml:"depth"`
	Workers    int           `yaml:"workers"`
	TimeLimit  time.Duration `yaml:"time_limit"`
	Seed       uint64        `yaml:"seed"`
	Exhaustive bool          `yaml:"exhaustive"`

	Order OrderConfig `yaml:"order"`
	Eval  EvalConfig  `yaml:"eval"`
}

func DefaultConfig() Config {
	return Config{
		Depth:   3,
		Workers: 1,
		Order: OrderConfig{
			CastleBonus:     10,
			KingMovePenalty: -100,
		},
		Eval: EvalConfig{
			Pawn:           100,
			Knight:         320,
			Bishop:         330,
			Rook:           500,
			Queen:          900,
			King:           20000,
			Mobility:       true,
			MobilityWeight: 0.1,
			Center:         true,
			CenterBonus:    5,
		},
	}
}

// MaterialOnly returns the default configuration with the positional
// terms switched off.
func MaterialOnly() Config {
	cfg := DefaultConfig()
	cfg.Eval.Mobility = false
	cfg.Eval.Center = false
	return cfg
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Depth <= 0 {
		return fmt.Errorf("%w: depth must be positive, got %d", ErrConfiguration, c.Depth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrConfiguration, c.Workers)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: time limit must not be negative, got %s", ErrConfiguration, c.TimeLimit)
	}
	return c.Eval.validate()
}

func (e EvalConfig) validate() error {
	values := map[string]Score{
		"pawn":   e.Pawn,
		"knight": e.Knight,
		"bishop": e.Bishop,
		"rook":   e.Rook,
		"queen":  e.Queen,
		"king":   e.King,
	}
	for name, v := range values {
		if v <= 0 {
			return fmt.Errorf("%w: %s value must be positive, got %v", ErrConfiguration, name, v)
		}
	}
	if e.MobilityWeight < 0 || e.CenterBonus < 0 {
		return fmt.Errorf("%w: term weights must not be negative", ErrConfiguration)
	}
	return nil
}
