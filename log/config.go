package log

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config models the optional log filter config file:
//
//	defaultLevel: info
//	filters:
//	  - "debug:sql*"
//	  - "warn:api*"
type Config struct {
	DefaultLevel string   `yaml:"defaultLevel"`
	Filters      []string `yaml:"filters"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.DefaultLevel == "" {
		cfg.DefaultLevel = "info"
	}
	return &cfg, nil
}

// Rules combines the default level and the filter entries into a single
// zapfilter rule string. The catch-all comes last so explicit filters win.
func (c *Config) Rules() string {
	ret := ""
	for _, f := range c.Filters {
		ret += f + " "
	}
	return ret + c.DefaultLevel + "+:*"
}
