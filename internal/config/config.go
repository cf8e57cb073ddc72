package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr        = ":42069"
	DefaultStarBalance = 34
	DefaultLocale      = "en"
	DefaultStaticDir   = "static"
)

type Config struct {
	Server Server `yaml:"server" json:"server"`
	Stars  Stars  `yaml:"stars" json:"stars"`
	Locale string `yaml:"locale" json:"locale"`
	Seed   Seed   `yaml:"seed" json:"seed"`
}

type Server struct {
	Addr      string `yaml:"addr" json:"addr"`
	StaticDir string `yaml:"static_dir" json:"static_dir"`
	// DevStatic serves StaticDir from disk instead of the embedded copy.
	DevStatic bool `yaml:"dev_static" json:"dev_static"`
}

type Stars struct {
	// Balance is the star count shown on the home screen.
	Balance *int `yaml:"balance" json:"balance"`
}

// Seed lists entries loaded into the stores at start. Values are raw form
// input and go through the same validation as the screens.
type Seed struct {
	Tasks   []SeedTask   `yaml:"tasks" json:"tasks"`
	Rewards []SeedReward `yaml:"rewards" json:"rewards"`
}

type SeedTask struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Stars       string `yaml:"stars" json:"stars"`
	Category    string `yaml:"category" json:"category"`
}

type SeedReward struct {
	Description string `yaml:"description" json:"description"`
	Stars       string `yaml:"stars" json:"stars"`
}

// envOverrides are applied after the file. Unset variables leave the
// file value alone.
type envOverrides struct {
	Addr        *string `env:"GOLDSTARZ_ADDR"`
	StarBalance *int    `env:"GOLDSTARZ_STAR_BALANCE"`
	Locale      *string `env:"GOLDSTARZ_LOCALE"`
	DevStatic   *bool   `env:"GOLDSTARZ_DEV_STATIC"`
}

// StarBalance returns the configured balance or the default.
func (c *Config) StarBalance() int {
	if c.Stars.Balance == nil {
		return DefaultStarBalance
	}
	return *c.Stars.Balance
}

func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = DefaultAddr
	}
	if strings.TrimSpace(c.Server.StaticDir) == "" {
		c.Server.StaticDir = DefaultStaticDir
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = DefaultLocale
	}
	if c.Stars.Balance == nil {
		b := DefaultStarBalance
		c.Stars.Balance = &b
	}
}

func (c *Config) applyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Addr != nil {
		c.Server.Addr = *o.Addr
	}
	if o.StarBalance != nil {
		c.Stars.Balance = o.StarBalance
	}
	if o.Locale != nil {
		c.Locale = *o.Locale
	}
	if o.DevStatic != nil {
		c.Server.DevStatic = *o.DevStatic
	}
	return nil
}

func (c *Config) Validate() error {
	if c.StarBalance() < 0 {
		return fmt.Errorf("stars.balance must not be negative, got %d", c.StarBalance())
	}
	return nil
}

// Load reads path, overlays the environment and fills defaults. A missing
// file is not an error: the result is the defaults plus the environment.
func Load(path string) (*Config, error) {
	var r Config

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &r); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := r.applyEnv(); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
