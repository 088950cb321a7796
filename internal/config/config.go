package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env-default:"info"`
	BoardFile string `yaml:"board-file" env-default:""`
	AI        AI     `yaml:"ai"`
	Export    Export `yaml:"export"`
	Redis     Redis  `yaml:"redis"`
}

type AI struct {
	Mark       string `yaml:"mark" env-default:"X"`
	Depth      int    `yaml:"depth" env-default:"4"`
	Difficulty string `yaml:"difficulty" env-default:"minimax"`
	Seed       int64  `yaml:"seed" env-default:"0"`
}

type Export struct {
	CSVPath string `yaml:"csv-path"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Host    string `yaml:"host" env-default:"localhost"`
	Port    string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the YAML file at path and fills in defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
