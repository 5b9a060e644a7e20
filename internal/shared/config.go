package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Files   FilesConfig   `toml:"files"`
	Columns ColumnsConfig `toml:"columns"`
	Log     LogConfig     `toml:"log"`
}

// FilesConfig contains the default input and output paths.
type FilesConfig struct {
	Reference string `toml:"reference"`
	Master    string `toml:"master"`
	Output    string `toml:"output"`
}

// ColumnsConfig names the CSV columns read from each input and the column written to the masterlist.
type ColumnsConfig struct {
	ReferenceName string `toml:"reference_name"`
	ReferenceID   string `toml:"reference_id"`
	MasterName    string `toml:"master_name"`
	MasterID      string `toml:"master_id"`
	Branch        string `toml:"branch"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate reports an [ErrInvalidConfig] when a column name is blank or when the branch
// column collides with one of the master columns it is derived from.
func (c *Config) Validate() error {
	cols := map[string]string{
		"reference_name": c.Columns.ReferenceName,
		"reference_id":   c.Columns.ReferenceID,
		"master_name":    c.Columns.MasterName,
		"master_id":      c.Columns.MasterID,
		"branch":         c.Columns.Branch,
	}
	for key, v := range cols {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: columns.%s is empty", ErrInvalidConfig, key)
		}
	}

	if c.Columns.Branch == c.Columns.MasterName || c.Columns.Branch == c.Columns.MasterID {
		return fmt.Errorf("%w: columns.branch must differ from the master name and id columns", ErrInvalidConfig)
	}

	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
