package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/entities"
	"github.com/Lumos-Labs-HQ/uruseed/internal/inventory"
	"github.com/spf13/viper"
)

const (
	DefaultSchemaPath = "db/schema/001_initial_schema.sql"
	DefaultSeed       = 42
	DefaultAnchor     = "2025-01-01T00:00:00Z"
)

type Config struct {
	SchemaPath string         `json:"schema_path" mapstructure:"schema_path"`
	Seed       int64          `json:"seed" mapstructure:"seed"`
	Anchor     string         `json:"anchor" mapstructure:"anchor"`
	Database   Database       `json:"database" mapstructure:"database"`
	Volumes    map[string]int `json:"volumes" mapstructure:"volumes"`
	Inventory  Inventory      `json:"inventory" mapstructure:"inventory"`
	Report     string         `json:"report,omitempty" mapstructure:"report"`
	Log        Log            `json:"log" mapstructure:"log"`
	Quiet      bool           `json:"quiet,omitempty" mapstructure:"quiet"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	Driver   string `json:"driver,omitempty" mapstructure:"driver"`
	URL      string `json:"url,omitempty" mapstructure:"url"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Inventory struct {
	Lines          int     `json:"lines" mapstructure:"lines"`
	MinMovements   int     `json:"min_movements" mapstructure:"min_movements"`
	MaxMovements   int     `json:"max_movements" mapstructure:"max_movements"`
	OutProbability float64 `json:"out_probability" mapstructure:"out_probability"`
	StepCap        int     `json:"step_cap" mapstructure:"step_cap"`
	BalanceUpdates string  `json:"balance_updates" mapstructure:"balance_updates"`
}

type Log struct {
	Level string `json:"level" mapstructure:"level"`
}

// SetDefaults registers the built-in values on v so that explicit zeros in
// a config file still win over them.
func SetDefaults(v *viper.Viper) {
	inv := entities.DefaultInventoryOptions()

	v.SetDefault("schema_path", DefaultSchemaPath)
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("anchor", DefaultAnchor)
	v.SetDefault("database.provider", "sqlite")
	v.SetDefault("database.url_env", "DATABASE_URL")
	v.SetDefault("inventory.lines", 500)
	v.SetDefault("inventory.min_movements", inv.MinMovements)
	v.SetDefault("inventory.max_movements", inv.MaxMovements)
	v.SetDefault("inventory.out_probability", inv.OutProbability)
	v.SetDefault("inventory.step_cap", inv.StepCap)
	v.SetDefault("inventory.balance_updates", string(inv.BalanceUpdates))
	v.SetDefault("log.level", "info")
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Volumes == nil {
		cfg.Volumes = map[string]int{}
	}
	cfg.Database.Provider = strings.ToLower(cfg.Database.Provider)

	return &cfg, nil
}

// GetDatabaseURL prefers an explicit url over the environment variable.
func (c *Config) GetDatabaseURL() (string, error) {
	if c.Database.URL != "" {
		return c.Database.URL, nil
	}
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) AnchorTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, c.Anchor)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor %q: expected RFC3339 such as %s", c.Anchor, DefaultAnchor)
	}
	return t.UTC(), nil
}

// InventoryOptions converts the inventory section for the movement generator.
func (c *Config) InventoryOptions() entities.InventoryOptions {
	return entities.InventoryOptions{
		OutProbability: c.Inventory.OutProbability,
		StepCap:        c.Inventory.StepCap,
		MinMovements:   c.Inventory.MinMovements,
		MaxMovements:   c.Inventory.MaxMovements,
		BalanceUpdates: inventory.BalanceUpdates(c.Inventory.BalanceUpdates),
	}
}

// EffectiveVolumes merges inventory.lines into the per-table volumes.
// An explicit volumes.inventory_movements entry wins.
func (c *Config) EffectiveVolumes() map[string]int {
	volumes := make(map[string]int, len(c.Volumes)+1)
	for k, v := range c.Volumes {
		volumes[k] = v
	}
	if _, ok := volumes["inventory_movements"]; !ok {
		volumes["inventory_movements"] = c.Inventory.Lines
	}
	return volumes
}

func (c *Config) Validate() error {
	supportedProviders := database.SupportedProviders()
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.SchemaPath == "" {
		return fmt.Errorf("schema_path cannot be empty")
	}

	if _, err := c.AnchorTime(); err != nil {
		return err
	}

	inv := c.Inventory
	if inv.OutProbability < 0 || inv.OutProbability > 1 {
		return fmt.Errorf("inventory.out_probability must be within [0, 1], got %v", inv.OutProbability)
	}
	if inv.StepCap < 1 {
		return fmt.Errorf("inventory.step_cap must be at least 1, got %d", inv.StepCap)
	}
	if inv.MinMovements < 1 {
		return fmt.Errorf("inventory.min_movements must be at least 1, got %d", inv.MinMovements)
	}
	if inv.MinMovements > inv.MaxMovements {
		return fmt.Errorf("inventory.min_movements (%d) exceeds inventory.max_movements (%d)", inv.MinMovements, inv.MaxMovements)
	}
	if inv.Lines < 0 {
		return fmt.Errorf("inventory.lines cannot be negative: %d", inv.Lines)
	}
	switch inventory.BalanceUpdates(inv.BalanceUpdates) {
	case inventory.UpdatesAuto, inventory.UpdatesAlways, inventory.UpdatesNever:
	default:
		return fmt.Errorf("unsupported inventory.balance_updates: %s. Supported: auto, always, never", inv.BalanceUpdates)
	}

	for table, n := range c.Volumes {
		if n < 0 {
			return fmt.Errorf("volumes.%s cannot be negative: %d", table, n)
		}
	}

	return nil
}
