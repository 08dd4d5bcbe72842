package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	AppName string       `yaml:"app_name"`
	Applet  AppletConfig `yaml:"applet"`
	Server  ServerConfig `yaml:"server"`
	Agent   AgentConfig  `yaml:"agent"`
	Logs    LogsConfig   `yaml:"logs"`
	API     API          `yaml:"api"`
	Daemon  DaemonConfig `yaml:"daemon"`
}

// AppletConfig holds the panel applet presentation settings
type AppletConfig struct {
	Icon        string      `yaml:"icon"`
	ShowPerCore bool        `yaml:"show_per_core"`
	Popup       PopupLimits `yaml:"popup"`
}

// PopupLimits bounds the popup size in terminal cells
type PopupLimits struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// ServerConfig holds the local feed server configuration
type ServerConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Port           int    `yaml:"port"`
	Host           string `yaml:"host"`
	ReadTimeout    int    `yaml:"read_timeout"`
	WriteTimeout   int    `yaml:"write_timeout"`
	IdleTimeout    int    `yaml:"idle_timeout"`
	MaxHeaderBytes int    `yaml:"max_header_bytes"`
}

// AgentConfig holds the credentials accepted by the feed login endpoint
type AgentConfig struct {
	Auth AuthConfig `yaml:"auth"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
}

// DaemonConfig holds settings for the headless feed process
type DaemonConfig struct {
	PIDFile string `yaml:"pid_file"`
}

// LogsConfig holds logging configuration
type LogsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Level    string `yaml:"level"`
	FilePath string `yaml:"file_path"`
	Format   string `yaml:"format"`
	Stdout   bool   `yaml:"stdout"`
}

// LoadConfig loads the configuration from the specified file path.
// Keys missing from the file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path
func SaveConfig(cfg *Config, filePath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the values that would otherwise break the applet or the feed
func (c *Config) Validate() error {
	p := c.Applet.Popup
	if p.MinWidth <= 0 || p.MaxWidth <= 0 {
		return fmt.Errorf("popup width limits must be positive")
	}
	if p.MinWidth > p.MaxWidth {
		return fmt.Errorf("popup min_width %d exceeds max_width %d", p.MinWidth, p.MaxWidth)
	}
	if p.MaxHeight > 0 && p.MinHeight > p.MaxHeight {
		return fmt.Errorf("popup min_height %d exceeds max_height %d", p.MinHeight, p.MaxHeight)
	}

	if c.Server.Enabled && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}

	if c.API.Auth.Enabled && c.API.Auth.JWTSecret == "" {
		return fmt.Errorf("api auth is enabled but jwt_secret is empty")
	}

	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		AppName: "PowerManager",
		Applet: AppletConfig{
			Icon:        "▣",
			ShowPerCore: true,
			Popup: PopupLimits{
				MinWidth:  30,
				MaxWidth:  46,
				MinHeight: 8,
				MaxHeight: 45,
			},
		},
		Server: ServerConfig{
			Enabled:      false,
			Port:         8089,
			Host:         "127.0.0.1",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
		},
		Daemon: DaemonConfig{
			PIDFile: "/tmp/power_manager.pid",
		},
		Logs: LogsConfig{
			Enabled:  true,
			Level:    "info",
			FilePath: "logs",
			Format:   "json",
			Stdout:   false,
		},
	}
}
