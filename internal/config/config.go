package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	OutputPath  string `yaml:"output-path" env:"OUTPUT_PATH" env-default:"output.txt"`
	DatasetPath string `yaml:"dataset-path" env:"DATASET_PATH"`
	Workers     int    `yaml:"workers" env:"WORKERS" env-default:"4"`
	NoCache     bool   `yaml:"no-cache" env:"NO_CACHE"`
	NoDemo      bool   `yaml:"no-demo" env:"NO_DEMO"`
	HTTPPort    string `yaml:"http-port" env:"HTTP_PORT"`
	Redis       Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in the yml file at path. A missing file
// is not an error: the configuration then comes from the environment and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

// LabelsRequested reports whether any consumer of solver labels is configured.
func (that *Config) LabelsRequested() bool {
	return that.DatasetPath != "" || that.Redis.Enabled()
}

func (that *Redis) Enabled() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
