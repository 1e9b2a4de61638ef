package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-simpler.org/env"
	"gopkg.in/yaml.v3"

	"keyforge/internal/generator"
)

// Error is a configuration problem: a missing, malformed or inconsistent
// parameter. It is always raised before any key is written.
type Error struct {
	Param  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Param, e.Reason)
}

func newError(param, format string, args ...interface{}) *Error {
	return &Error{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// Config holds all settings for a generation run. Values come from the
// YAML config file, overridden by KEYFORGE_* environment variables.
// Start and End are hex literals, with or without a 0x prefix.
type Config struct {
	OutputFile string `yaml:"output_file" env:"KEYFORGE_OUTPUT_FILE" usage:"path of the generated key file"`
	KeyLength  int    `yaml:"key_length" env:"KEYFORGE_KEY_LENGTH" usage:"hex digits per key"`
	Start      string `yaml:"start" env:"KEYFORGE_START" usage:"first value of the range, hex literal"`
	End        string `yaml:"end" env:"KEYFORGE_END" usage:"last value of the range, hex literal"`
	NumKeys    uint64 `yaml:"num_keys" env:"KEYFORGE_NUM_KEYS" usage:"cap on generated keys, 0 means the whole range"`
	LogFile    string `yaml:"log_file" env:"KEYFORGE_LOG_FILE" usage:"optional log file, empty logs to stderr only"`
	LogLevel   string `yaml:"log_level" env:"KEYFORGE_LOG_LEVEL" usage:"DEBUG, INFO, WARN or ERROR"`
	Quiet      bool   `yaml:"quiet" env:"KEYFORGE_QUIET" usage:"disable the progress screen"`

	startValue uint64
	endValue   uint64
}

func defaults() *Config {
	return &Config{
		OutputFile: "keys.txt",
		KeyLength:  12,
		Start:      "0x0",
		End:        "0xFFFFFFFFFFFF",
		LogLevel:   "INFO",
	}
}

// Load reads the config file at path, applies environment overrides and
// validates the result. All failures are reported as *Error.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("config file", "%v", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, newError("config file", "parsing %s: %v", path, err)
	}
	if err := env.Load(cfg, nil); err != nil {
		return nil, newError("environment", "%v", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Range returns the parsed inclusive bounds of the key range.
func (c *Config) Range() (start, end uint64) {
	return c.startValue, c.endValue
}

// validate checks range consistency. A key_length too short to hold end
// is rejected rather than truncated: a truncated key is the key of some
// smaller value, so truncation would silently produce colliding lines.
func (c *Config) validate() error {
	if c.OutputFile == "" {
		return newError("output_file", "must not be empty")
	}
	if c.KeyLength < 1 {
		return newError("key_length", "must be a positive digit count, got %d", c.KeyLength)
	}
	start, err := parseHex("start", c.Start)
	if err != nil {
		return err
	}
	end, err := parseHex("end", c.End)
	if err != nil {
		return err
	}
	if end < start {
		return newError("end", "0x%X is below start 0x%X", end, start)
	}
	if w := generator.HexWidth(end); w > c.KeyLength {
		return newError("key_length", "%d digits cannot hold end value 0x%X, needs %d", c.KeyLength, end, w)
	}
	c.startValue, c.endValue = start, end
	return nil
}

func parseHex(param, s string) (uint64, error) {
	t := strings.TrimSpace(s)
	if len(t) > 2 && (strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X")) {
		t = t[2:]
	}
	v, err := strconv.ParseUint(t, 16, 64)
	if err != nil {
		return 0, newError(param, "%q is not a hexadecimal value", s)
	}
	return v, nil
}
