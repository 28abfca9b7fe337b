package config

import (
	"errors"
	"fmt"

	"github.com/kevinphelps/nglint/configs"
	"github.com/kevinphelps/nglint/pkg/fs"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the configuration is looked up when no path is given.
const DefaultPath = "./.nglint.yaml"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mockmanager.gen.go -package=config

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration file. Fields missing from the file
	// keep their default values.
	GetConfig() (Config, error)
	// GetConfigWithFallback is GetConfig returning the defaults when the file
	// does not exist. Unreadable or invalid files are still errors.
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	// Init writes the commented default configuration file.
	Init(force bool) error
	GetConfigPath() string
	DefaultConfig() Config
}

type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager reading configPath through fs.
func NewManager(fs fs.FS, configPath string) Manager {
	if configPath == "" {
		configPath = DefaultPath
	}

	return &realManager{
		fs:         fs,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return Config{}, err
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		if c.fs.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to the defaults if there is no file.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotFound) {
		return c.DefaultConfig(), nil
	}
	return config, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	return c.write(data)
}

// Init writes the embedded default configuration file.
func (c *realManager) Init(force bool) error {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return err
	}

	if !force {
		exists, err := c.fs.Exists(path)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	return c.write(configs.DefaultConfigYAML)
}

func (c *realManager) write(data []byte) error {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return err
	}

	if err := c.fs.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Default()
}
