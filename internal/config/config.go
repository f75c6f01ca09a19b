package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mbarria/gmxlab/internal/sched"
)

type Config struct {
	Batch    sched.BatchConfig            `yaml:"batch"`
	Profiles map[string]sched.BatchConfig `yaml:"profiles"`
}

func DefaultConfig() *Config {
	return &Config{}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Profile resolves a named batch override, file-defined profiles shadowing
// built-in ones.
func (c *Config) Profile(name string) *sched.BatchConfig {
	if c != nil {
		if p, ok := c.Profiles[name]; ok {
			return &p
		}
	}
	if p, ok := Profiles[name]; ok {
		return &p
	}
	return nil
}
