package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HttpServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	GitHub     GitHub     `yaml:"github"`
	Metrics    Metrics    `yaml:"metrics"`
}

type HttpServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type Database struct {
	Driver         string `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	DSN            string `yaml:"dsn" env:"DATABASE_URL" env-required:"true"`
	MigrateOnStart bool   `yaml:"migrate_on_start" env:"DB_MIGRATE_ON_START" env-default:"false"`
}

type GitHub struct {
	BaseURL  string        `yaml:"base_url" env:"GITHUB_BASE_URL" env-default:"https://api.github.com/"`
	Token    string        `yaml:"token" env:"GITHUB_TOKEN"`
	PageSize int           `yaml:"page_size" env:"GITHUB_PAGE_SIZE" env-default:"5"`
	Timeout  time.Duration `yaml:"timeout" env:"GITHUB_TIMEOUT" env-default:"5s"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path" env:"METRICS_PATH" env-default:"/metrics"`
}

// MustLoad panics if config can not be read.
// Without a config path the whole config comes from the environment.
func MustLoad() *Config {
	configPath := fetchConfigPath()

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			panic("failed to read config from env: " + err.Error())
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); err != nil {
		panic("config file does not exist: " + configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "".
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
