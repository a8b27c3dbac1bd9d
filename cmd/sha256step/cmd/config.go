package cmd

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zeebo/sha256step/internal/logging"
	"github.com/zeebo/sha256step/report"
)

const (
	envPrefix         = "SHA256STEP"
	defaultConfigName = ".sha256step"
	defaultRounds     = 8
	defaultDelay      = "1"
	defaultWidth      = 72
)

// Config is the effective configuration after flags, environment and the
// optional config file have been merged.
type Config struct {
	Rounds        int    `mapstructure:"rounds"`
	NoSchedule    bool   `mapstructure:"no-schedule"`
	ScheduleLimit int    `mapstructure:"schedule-limit"`
	Plain         bool   `mapstructure:"plain"`
	Width         int    `mapstructure:"width"`
	Delay         string `mapstructure:"delay"`
	ScheduleDelay string `mapstructure:"schedule-delay"`
	RoundDelay    string `mapstructure:"round-delay"`
	Step          bool   `mapstructure:"step"`
	LogLevel      string `mapstructure:"log-level"`
	LogDir        string `mapstructure:"log-dir"`
}

func addFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default is ./"+defaultConfigName+".{yaml,json,toml})")
	fs.Int("rounds", defaultRounds, "how many rounds of the first block to display (0-64)")
	fs.Bool("no-schedule", false, "do not print the message schedule")
	fs.Int("schedule-limit", report.DefaultScheduleLimit, "how many W[t] entries to show (max 64)")
	fs.Bool("plain", false, "force plain text output")
	fs.Int("width", defaultWidth, "width of rules in rich output")
	fs.String("delay", defaultDelay, "base delay between printed items (seconds or a duration like 350ms)")
	fs.String("schedule-delay", "", "delay per W[t] line (overrides --delay)")
	fs.String("round-delay", "", "delay per round line (overrides --delay)")
	fs.Bool("step", false, "pause for Enter between major sections")
	fs.String("log-level", logging.DefaultLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	fs.String("log-dir", "", "also write logs to daily rotated files in this directory")
}

// loadConfig reads the config file named by --config, or ./.sha256step.* if
// present, then layers the environment and flags on top.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (*Config, string, error) {
	if err := v.BindPFlags(fs); err != nil {
		return nil, "", errors.Wrap(err, "bind flags")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(defaultConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, "", errors.Wrap(err, "read config")
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", errors.Wrap(err, "decode config")
	}
	return cfg, v.ConfigFileUsed(), nil
}

// pacing resolves the delay settings.
func (c *Config) pacing() (report.Pacing, error) {
	delay, _, err := report.ParseDelay(c.Delay)
	if err != nil {
		return report.Pacing{}, errors.WithMessage(err, "--delay")
	}

	var schedule, round *time.Duration
	if d, ok, err := report.ParseDelay(c.ScheduleDelay); err != nil {
		return report.Pacing{}, errors.WithMessage(err, "--schedule-delay")
	} else if ok {
		schedule = &d
	}
	if d, ok, err := report.ParseDelay(c.RoundDelay); err != nil {
		return report.Pacing{}, errors.WithMessage(err, "--round-delay")
	} else if ok {
		round = &d
	}

	return report.NewPacing(delay, schedule, round, c.Step), nil
}
