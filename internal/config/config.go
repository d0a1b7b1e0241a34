package config

import "fmt"

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Hooks       HooksConfig       `yaml:"hooks"`
}

type PathsConfig struct {
	Scripts string `yaml:"scripts"`
	Outputs string `yaml:"outputs"`
	Archive string `yaml:"archive"`
	Prompts string `yaml:"prompts"`
}

type GeminiConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	ChunkSize      int    `yaml:"chunk_size"`
	ChunkOverlap   int    `yaml:"chunk_overlap"`
}

type OutputConfig struct {
	Docx        bool   `yaml:"docx"`
	ActivityLog string `yaml:"activity_log"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type HooksConfig struct {
	PostRun string `yaml:"post_run"`
}

func (c *Config) Validate() error {
	if c.Paths.Scripts == "" {
		c.Paths.Scripts = "Scripts"
	}
	if c.Paths.Outputs == "" {
		c.Paths.Outputs = "Outputs"
	}
	if c.Paths.Archive == "" {
		c.Paths.Archive = "Ripped"
	}
	if c.Paths.Prompts == "" {
		c.Paths.Prompts = "prompts"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TimeoutSeconds == 0 {
		c.Gemini.TimeoutSeconds = 1200
	}
	if c.Gemini.TimeoutSeconds < 0 {
		return fmt.Errorf("gemini.timeout_seconds must not be negative")
	}
	if c.Gemini.ChunkSize < 0 {
		return fmt.Errorf("gemini.chunk_size must not be negative")
	}
	if c.Gemini.ChunkOverlap < 0 {
		return fmt.Errorf("gemini.chunk_overlap must not be negative")
	}
	if c.Gemini.ChunkSize > 0 && c.Gemini.ChunkOverlap >= c.Gemini.ChunkSize {
		return fmt.Errorf("gemini.chunk_overlap must be smaller than gemini.chunk_size")
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Output.ActivityLog == "" {
		c.Output.ActivityLog = "activity_log.csv"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
