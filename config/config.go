package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/touchplay/engine"
	"github.com/lixenwraith/touchplay/parameter"
)

// FileName is the config file looked up in the working directory, without extension
const FileName = "touchplay"

// TuningConfig overrides gameplay constants
type TuningConfig struct {
	Speed            float64       `mapstructure:"speed"`
	ArrivalThreshold float64       `mapstructure:"arrivalThreshold"`
	Reward           int           `mapstructure:"reward"`
	FeedbackDelay    time.Duration `mapstructure:"feedbackDelay"`
	FrameRate        int           `mapstructure:"frameRate"`
}

// PlayConfig selects the play to run
type PlayConfig struct {
	File string `mapstructure:"file"`
	Save string `mapstructure:"save"`
}

// InputConfig points at an optional keymap override
type InputConfig struct {
	Keymap string `mapstructure:"keymap"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
	Enabled bool   `mapstructure:"enabled"`
}

// AudioConfig toggles audio cues
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// JournalConfig controls the attempt journal
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Config is the complete runtime configuration
type Config struct {
	Tuning  TuningConfig  `mapstructure:"tuning"`
	Play    PlayConfig    `mapstructure:"play"`
	Input   InputConfig   `mapstructure:"input"`
	Log     LogConfig     `mapstructure:"log"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Journal JournalConfig `mapstructure:"journal"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"play":      "play.file",
	"save":      "play.save",
	"keymap":    "input.keymap",
	"speed":     "tuning.speed",
	"log-level": "log.level",
	"log-dir":   "log.dir",
	"audio":     "audio.enabled",
	"journal":   "journal.path",
	"record":    "journal.enabled",
}

// Flags returns the flag set shared by the binaries
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (default ./"+FileName+".toml)")
	fs.String("play", "", "play file to run instead of the built-in example")
	fs.String("save", "design.toml", "file that designer saves are written to")
	fs.String("keymap", "", "keymap override file")
	fs.Float64("speed", parameter.PlayerSpeed, "player run speed in units per second")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-dir", "logs", "log directory")
	fs.Bool("audio", true, "play audio cues")
	fs.String("journal", "touchplay.db", "attempt journal database path")
	fs.Bool("record", true, "record attempts in the journal")
	return fs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tuning.speed", parameter.PlayerSpeed)
	v.SetDefault("tuning.arrivalThreshold", parameter.ArrivalThreshold)
	v.SetDefault("tuning.reward", parameter.DecisionReward)
	v.SetDefault("tuning.feedbackDelay", parameter.FeedbackDelay)
	v.SetDefault("tuning.frameRate", parameter.DefaultFrameRate)

	v.SetDefault("play.file", "")
	v.SetDefault("play.save", "design.toml")
	v.SetDefault("input.keymap", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.enabled", true)

	v.SetDefault("audio.enabled", true)

	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", "touchplay.db")
}

// Load resolves defaults, the config file and flags, in rising precedence
// fs may be nil; a missing default config file is not an error, a missing --config file is
func Load(fs *pflag.FlagSet, configDirs ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	explicit := ""
	if fs != nil {
		explicit, _ = fs.GetString("config")
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("toml")
		if len(configDirs) == 0 {
			configDirs = []string{"."}
		}
		for _, dir := range configDirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the session cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Tuning.Speed <= 0 {
		errs = append(errs, fmt.Errorf("tuning.speed must be positive, got %v", c.Tuning.Speed))
	}
	if c.Tuning.ArrivalThreshold <= 0 {
		errs = append(errs, fmt.Errorf("tuning.arrivalThreshold must be positive, got %v", c.Tuning.ArrivalThreshold))
	}
	if c.Tuning.Reward <= 0 {
		errs = append(errs, fmt.Errorf("tuning.reward must be positive, got %d", c.Tuning.Reward))
	}
	if c.Tuning.FeedbackDelay <= 0 {
		errs = append(errs, fmt.Errorf("tuning.feedbackDelay must be positive, got %v", c.Tuning.FeedbackDelay))
	}
	if c.Tuning.FrameRate <= 0 || c.Tuning.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("tuning.frameRate must be in 1..240, got %d", c.Tuning.FrameRate))
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		errs = append(errs, errors.New("journal.path is required when the journal is enabled"))
	}
	return errors.Join(errs...)
}

// EngineTuning maps the tuning section onto session tuning
func (c *Config) EngineTuning() engine.Tuning {
	return engine.Tuning{
		Speed:            c.Tuning.Speed,
		ArrivalThreshold: c.Tuning.ArrivalThreshold,
		Reward:           c.Tuning.Reward,
		FeedbackDelay:    c.Tuning.FeedbackDelay,
	}
}
