// Package config loads server configuration from a YAML file with
// environment variable overrides.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Data   DataConfig   `yaml:"data" json:"data"`
	LLM    LLMConfig    `yaml:"llm" json:"llm"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr" json:"addr"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec" json:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec" json:"write_timeout_sec"`
}

type DataConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

type LLMConfig struct {
	DefaultModel string `yaml:"default_model" json:"default_model"`
	AllowOrigin  string `yaml:"allow_origin" json:"allow_origin"`
}

func (s *ServerConfig) ApplyDefaults() {
	if s.Addr == "" {
		s.Addr = ":8080"
	}
	if s.ReadTimeoutSec == 0 {
		s.ReadTimeoutSec = 15
	}
	if s.WriteTimeoutSec == 0 {
		// Model-backed endpoints can take a while.
		s.WriteTimeoutSec = 120
	}
}

func (d *DataConfig) ApplyDefaults() {
	if d.Dir == "" {
		d.Dir = "data"
	}
}

func (l *LLMConfig) ApplyDefaults() {
	if l.DefaultModel == "" {
		l.DefaultModel = "gemini-2.5-flash-lite"
	}
}

func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Data.ApplyDefaults()
	c.LLM.ApplyDefaults()
}

// Default returns a config with every field at its default.
func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
