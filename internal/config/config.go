package config

import (
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme        = "minimal"
	DefaultLogLevel     = "warn"
	DefaultPlotWidth    = 70
	DefaultPlotHeight   = 15
	DefaultPlotPoints   = 50
	DefaultExportFormat = "json"

	EnvPrefix = "IMPACTKE"
)

// Config holds presentation settings only. The physical constants of the
// calculation are fixed and cannot be set here.
type Config struct {
	Theme        string     `yaml:"theme"`
	LogLevel     string     `yaml:"log_level"`
	ExportFormat string     `yaml:"export_format"`
	Plot         PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Points int `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:        DefaultTheme,
		LogLevel:     DefaultLogLevel,
		ExportFormat: DefaultExportFormat,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
			Points: DefaultPlotPoints,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the file at path onto base. Keys the file omits keep
// their value in base.
func LoadInto(base *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, base)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays IMPACTKE_* environment variables onto c.
func (c *Config) ApplyEnv() {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if s := v.GetString("theme"); s != "" {
		c.Theme = s
	}
	if s := v.GetString("log_level"); s != "" {
		c.LogLevel = s
	}
	if s := v.GetString("export_format"); s != "" {
		c.ExportFormat = s
	}
	if n := v.GetInt("plot_width"); n > 0 {
		c.Plot.Width = n
	}
	if n := v.GetInt("plot_height"); n > 0 {
		c.Plot.Height = n
	}
	if n := v.GetInt("plot_points"); n > 1 {
		c.Plot.Points = n
	}
}
