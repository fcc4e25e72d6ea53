package config

import "os"

// ApplyEnv overrides config fields from environment variables. Unset
// variables leave the existing values alone.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("JOBHUNTER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("JOBHUNTER_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("JOBHUNTER_LLM_MODEL"); v != "" {
		c.LLM.DefaultModel = v
	}
	if v := os.Getenv("JOBHUNTER_ALLOW_ORIGIN"); v != "" {
		c.LLM.AllowOrigin = v
	}
}
