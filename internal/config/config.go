// Package config loads the table settings and preflop range charts from an
// HCL document.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pokercats/holdem/internal/game"
)

// Config is the complete holdem configuration document.
type Config struct {
	Table  TableSettings    `hcl:"table,block"`
	Ranges []PositionRanges `hcl:"position,block"`
}

// TableSettings carries the table-level parameters.
type TableSettings struct {
	BigBlind           int `hcl:"big_blind"`
	Ante               int `hcl:"ante,optional"`
	StartingStack      int `hcl:"starting_stack,optional"`
	Seats              int `hcl:"seats,optional"`
	TurnTimeoutSeconds int `hcl:"turn_timeout_seconds,optional"`
	AIDelaySeconds     int `hcl:"ai_delay_seconds,optional"`
	HandLimit          int `hcl:"hand_limit,optional"`
}

// PositionRanges is one seat position's preflop charts. The open-raise chart
// is a flat hand list; the reactive charts are keyed by the position of the
// preflop aggressor.
type PositionRanges struct {
	Position     string    `hcl:"position,label"`
	OpenRaise    []string  `hcl:"open_raise,optional"`
	ColdCall     []VsRange `hcl:"cold_call,block"`
	ThreeBet     []VsRange `hcl:"three_bet,block"`
	CallThreeBet []VsRange `hcl:"call_three_bet,block"`
	FourBet      []VsRange `hcl:"four_bet,block"`
}

// VsRange is a hand list that applies against one aggressor position.
type VsRange struct {
	VsPosition string   `hcl:"vs,label"`
	Range      []string `hcl:"range"`
}

// Load reads an HCL config file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Parse decodes an in-memory HCL document.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = defaults.Table.BigBlind
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = defaults.Table.StartingStack
	}
	if c.Table.Seats == 0 {
		c.Table.Seats = defaults.Table.Seats
	}
	if c.Table.TurnTimeoutSeconds == 0 {
		c.Table.TurnTimeoutSeconds = defaults.Table.TurnTimeoutSeconds
	}
	if c.Table.AIDelaySeconds == 0 {
		c.Table.AIDelaySeconds = defaults.Table.AIDelaySeconds
	}
	if len(c.Ranges) == 0 {
		c.Ranges = defaults.Ranges
	}
}

// Validate checks the table settings. Range chart entries are not validated
// here; malformed entries are skipped with a warning at build time.
func (c *Config) Validate() error {
	if c.Table.BigBlind <= 0 {
		return fmt.Errorf("config: big blind must be positive, got %d", c.Table.BigBlind)
	}
	if c.Table.BigBlind%2 != 0 {
		return fmt.Errorf("config: big blind must be even so the small blind is exact, got %d", c.Table.BigBlind)
	}
	if c.Table.Ante < 0 {
		return fmt.Errorf("config: ante must be non-negative, got %d", c.Table.Ante)
	}
	if c.Table.Seats < 2 || c.Table.Seats > 9 {
		return fmt.Errorf("config: seats must be between 2 and 9, got %d", c.Table.Seats)
	}
	if c.Table.StartingStack < c.Table.BigBlind {
		return fmt.Errorf("config: starting stack %d cannot cover the big blind %d",
			c.Table.StartingStack, c.Table.BigBlind)
	}
	if c.Table.TurnTimeoutSeconds < 0 || c.Table.AIDelaySeconds < 0 {
		return fmt.Errorf("config: timers must be non-negative")
	}
	if c.Table.HandLimit < 0 {
		return fmt.Errorf("config: hand limit must be non-negative, got %d", c.Table.HandLimit)
	}
	return nil
}

// TableConfig converts the settings into the game package's table config.
func (c *Config) TableConfig() game.Config {
	return game.Config{
		BigBlind:      c.Table.BigBlind,
		Ante:          c.Table.Ante,
		StartingStack: c.Table.StartingStack,
		Seats:         c.Table.Seats,
		TurnTimeout:   time.Duration(c.Table.TurnTimeoutSeconds) * time.Second,
		AIDelay:       time.Duration(c.Table.AIDelaySeconds) * time.Second,
		HandLimit:     c.Table.HandLimit,
	}
}
