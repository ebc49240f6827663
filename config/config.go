package config

import (
	"checkers/meta"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	modes     = []string{"ask", "pvp", "pvc", "cvc", "selfplay"}
	computers = []string{"scan", "search"}
)

type Config struct {
	Mode          string        `mapstructure:"MODE"`     // ask, pvp, pvc, cvc or selfplay
	Computer      string        `mapstructure:"COMPUTER"` // scan or search
	Delay         time.Duration `mapstructure:"DELAY"`
	Seed          uint64        `mapstructure:"SEED"` // 0 seeds from the clock
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	Colour        bool          `mapstructure:"COLOUR"`
	Goroutines    int           `mapstructure:"GOROUTINES"`
	Episodes      int           `mapstructure:"EPISODES"`
	Duration      time.Duration `mapstructure:"DURATION"`
	Cutoff        int           `mapstructure:"CUTOFF"`
	SelfPlayGames int           `mapstructure:"SELFPLAY_GAMES"`
	OutDir        string        `mapstructure:"OUT_DIR"`
}

// Setup reads the config file at cfgPath, if any, over the defaults.
// CHECKERS_ prefixed environment variables override both.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("MODE", "ask")
	v.SetDefault("COMPUTER", "scan")
	v.SetDefault("DELAY", meta.COMPUTER_DELAY)
	v.SetDefault("SEED", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("COLOUR", true)
	v.SetDefault("GOROUTINES", meta.GO_ROUTINES)
	v.SetDefault("EPISODES", meta.EPISODES)
	v.SetDefault("DURATION", time.Duration(0))
	v.SetDefault("CUTOFF", meta.WITH_CUTOFF)
	v.SetDefault("SELFPLAY_GAMES", meta.SELF_PLAY_GAMES)
	v.SetDefault("OUT_DIR", "out")

	v.SetEnvPrefix("CHECKERS")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Mode = strings.ToLower(c.Mode)
	c.Computer = strings.ToLower(c.Computer)
	if !slices.Contains(modes, c.Mode) {
		return fmt.Errorf("unknown mode %q, want one of %v", c.Mode, modes)
	}
	if !slices.Contains(computers, c.Computer) {
		return fmt.Errorf("unknown computer %q, want one of %v", c.Computer, computers)
	}
	if c.Computer == "search" && c.Episodes <= 0 && c.Duration <= 0 {
		return errors.New("search computer needs episodes or a duration")
	}
	if c.Mode == "selfplay" {
		if c.SelfPlayGames < 1 {
			return fmt.Errorf("selfplay mode needs at least one game, got %d", c.SelfPlayGames)
		}
		if c.Episodes <= 0 && c.Duration <= 0 {
			return errors.New("selfplay mode needs episodes or a duration for its search agents")
		}
	}
	return nil
}
