package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// SourceConfig tunes one board's extractor. Zero values fall back to the
// built-in defaults for that source.
type SourceConfig struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Pages int    `yaml:"pages,omitempty" json:"pages,omitempty"`
}

type Config struct {
	App struct {
		Addr string `yaml:"addr" json:"addr"`
		Port int    `yaml:"port" json:"port"`
	} `yaml:"app" json:"app"`

	Scrape struct {
		SourceTimeoutSeconds int     `yaml:"source_timeout_seconds" json:"source_timeout_seconds"`
		HostReqPerSec        float64 `yaml:"host_req_per_sec" json:"host_req_per_sec"`
		HostBurst            int     `yaml:"host_burst" json:"host_burst"`
	} `yaml:"scrape" json:"scrape"`

	Sources struct {
		Arbeitnow     SourceConfig `yaml:"arbeitnow" json:"arbeitnow"`
		Manfred       SourceConfig `yaml:"manfred" json:"manfred"`
		BerlinStartup SourceConfig `yaml:"berlin-startup-jobs" json:"berlin-startup-jobs"`
		Job4Good      SourceConfig `yaml:"job4good" json:"job4good"`
		Turijobs      SourceConfig `yaml:"turijobs" json:"turijobs"`
	} `yaml:"sources" json:"sources"`
}

// Default returns the configuration the service runs with when the user
// file has nothing to say.
func Default() Config {
	var cfg Config
	cfg.App.Addr = "0.0.0.0"
	cfg.App.Port = 8080
	cfg.Scrape.SourceTimeoutSeconds = 30
	cfg.Scrape.HostReqPerSec = 2
	cfg.Scrape.HostBurst = 4
	cfg.Sources.Arbeitnow.Pages = 1
	return cfg
}

// Load reads the YAML file at path over Default().
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// envOverrides are the few settings worth flipping without editing the
// config file, e.g. in containers.
type envOverrides struct {
	Addr                 string `env:"APP_ADDR"`
	Port                 int    `env:"APP_PORT"`
	SourceTimeoutSeconds int    `env:"SCRAPE_SOURCE_TIMEOUT_SECONDS"`
}

// ApplyEnv overlays environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return err
	}
	if o.Addr != "" {
		cfg.App.Addr = o.Addr
	}
	if o.Port != 0 {
		cfg.App.Port = o.Port
	}
	if o.SourceTimeoutSeconds != 0 {
		cfg.Scrape.SourceTimeoutSeconds = o.SourceTimeoutSeconds
	}
	return nil
}
