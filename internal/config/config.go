package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/san-kum/sortvis/internal/sorting"
	"gopkg.in/yaml.v3"
)

const (
	DefaultN         = 50
	DefaultMinVal    = 0
	DefaultMaxVal    = 100
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultTickRate  = 60
	DefaultAlgorithm = "bubble"
	DefaultDirection = "ascending"
	DefaultTheme     = "classic"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	N         int    `yaml:"n" validate:"gte=1,lte=2000"`
	MinVal    int    `yaml:"min_val"`
	MaxVal    int    `yaml:"max_val" validate:"gtefield=MinVal"`
	Width     int    `yaml:"width" validate:"gt=100,lte=8192"`
	Height    int    `yaml:"height" validate:"gt=150,lte=8192"`
	TickRate  int    `yaml:"tick_rate" validate:"gte=1,lte=1000"`
	Algorithm string `yaml:"algorithm" validate:"oneof=bubble insertion quick merge"`
	Direction string `yaml:"direction" validate:"oneof=ascending asc a descending desc d"`
	Seed      int64  `yaml:"seed"`
	Theme     string `yaml:"theme" validate:"required"`
	Sound     bool   `yaml:"sound"`
}

var validate = validator.New()

func DefaultConfig() *Config {
	return &Config{
		N:         DefaultN,
		MinVal:    DefaultMinVal,
		MaxVal:    DefaultMaxVal,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		TickRate:  DefaultTickRate,
		Algorithm: DefaultAlgorithm,
		Direction: DefaultDirection,
		Theme:     DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the file at path onto cfg. Keys missing from the file
// keep their current values.
func LoadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func (c *Config) SortDirection() sorting.Direction {
	dir, err := sorting.ParseDirection(c.Direction)
	if err != nil {
		return sorting.Ascending
	}
	return dir
}

func (c *Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / DefaultTickRate
	}
	return time.Second / time.Duration(c.TickRate)
}

// ShapeChanged reports whether other generates differently shaped datasets.
func (c *Config) ShapeChanged(other *Config) bool {
	return c.N != other.N || c.MinVal != other.MinVal || c.MaxVal != other.MaxVal
}
