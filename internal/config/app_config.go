package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LoadOptions controls how the configuration file is located.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// FileConfiguration mirrors the keys accepted in a configuration file.
type FileConfiguration struct {
	Exclude []string `mapstructure:"exclude"`
	Format  string   `mapstructure:"format"`
	Copy    *bool    `mapstructure:"copy"`
}

// LoadFileConfiguration reads the file named by options.ExplicitFilePath.
// Nothing is read when no file was requested.
func LoadFileConfiguration(options LoadOptions) (FileConfiguration, error) {
	if options.ExplicitFilePath == "" {
		return FileConfiguration{}, nil
	}
	path, resolveErr := resolveConfigPath(options.WorkingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return FileConfiguration{}, resolveErr
	}
	return loadConfigurationFromPath(path)
}

func resolveConfigPath(workingDirectory, explicitPath string) (string, error) {
	if filepath.IsAbs(explicitPath) {
		return explicitPath, nil
	}
	if workingDirectory == "" {
		absolute, err := filepath.Abs(explicitPath)
		if err != nil {
			return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
		}
		return absolute, nil
	}
	return filepath.Join(workingDirectory, explicitPath), nil
}

func loadConfigurationFromPath(path string) (FileConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		return FileConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return FileConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return FileConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var configuration FileConfiguration
	if decodeErr := reader.Unmarshal(&configuration); decodeErr != nil {
		return FileConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return configuration, nil
}
