// Package config loads the engine's YAML configuration surface: hash
// table size, search depth cap, the no-clock fallback move time,
// whether quiescence is enabled, and logging options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kalinauskas/corvid/engine"
)

// File is the on-disk shape of the configuration file.
type File struct {
	TTMB      int  `yaml:"tt_mb"`
	MaxDepth  int  `yaml:"max_depth"`
	TimeMS    int  `yaml:"time_ms"`
	Quiescence *bool `yaml:"quiescence"`
	Logging   struct {
		EmitDepthLog bool `yaml:"emit_depth_log"`
	} `yaml:"logging"`
}

// Error reports a malformed or out-of-range configuration value; it
// is a ConfigError, fatal at startup per the error handling design.
type Error struct {
	Field string
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

// Load reads and validates a configuration file, filling in defaults
// for anything left unset. An empty path returns the defaults.
func Load(path string) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &Error{Field: "path", Msg: err.Error()}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, &Error{Field: "yaml", Msg: err.Error()}
	}

	if f.TTMB != 0 {
		if f.TTMB < 1 {
			return cfg, &Error{Field: "tt_mb", Msg: "must be >= 1"}
		}
		cfg.TTSizeMB = f.TTMB
	}
	if f.MaxDepth != 0 {
		if f.MaxDepth < 1 || f.MaxDepth > engine.MaxPly {
			return cfg, &Error{Field: "max_depth", Msg: fmt.Sprintf("must be in [1, %d]", engine.MaxPly)}
		}
		cfg.MaxDepth = f.MaxDepth
	}
	if f.TimeMS != 0 {
		if f.TimeMS < 1 {
			return cfg, &Error{Field: "time_ms", Msg: "must be >= 1"}
		}
		cfg.DefaultMoveMS = f.TimeMS
	}
	if f.Quiescence != nil {
		cfg.UseQuiescence = *f.Quiescence
	}
	cfg.EmitDepthLog = f.Logging.EmitDepthLog

	return cfg, nil
}
