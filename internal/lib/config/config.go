package config

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HttpServer `yaml:"http_server" env-required:"true"`
	Storage    Storage    `yaml:"storage"`
	Auth       Auth       `yaml:"auth"`
	Mail       Mail       `yaml:"mail"`
	Teams      Teams      `yaml:"teams"`
}

type HttpServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type Storage struct {
	DSN          string `yaml:"dsn" env:"DATABASE_URL"`
	AutoMigrate  bool   `yaml:"auto_migrate" env:"AUTO_MIGRATE" env-default:"false"`
	MaxOpenConns int    `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns int    `yaml:"max_idle_conns" env-default:"5"`
}

type Auth struct {
	JWTSecret  string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	CookieName string `yaml:"cookie_name" env:"AUTH_COOKIE_NAME" env-default:"session_token"`
}

// Mail is optional: an empty Host disables invite notifications.
type Mail struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:"noreply@hackfest.local"`
	FromName string `yaml:"from_name" env-default:"Hackfest"`
	BaseURL  string `yaml:"base_url" env:"APP_BASE_URL" env-default:"http://localhost:3000"`
}

type Teams struct {
	SearchDefaultLimit int `yaml:"search_default_limit" env-default:"10"`
	SearchMaxLimit     int `yaml:"search_max_limit" env-default:"50"`
}

var (
	ErrNoDSN    = errors.New("storage dsn is required")
	ErrNoSecret = errors.New("auth jwt secret is required")
)

// MustLoad panics if config can not be found.
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is required")
	}

	if _, err := os.Stat(configPath); err != nil {
		panic("config file does not exist:" + configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

// Load reads the YAML file at path, applies env overrides and checks
// the settings the server cannot start without.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.DSN == "" {
		return nil, ErrNoDSN
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, ErrNoSecret
	}

	return &cfg, nil
}

// MailEnabled reports whether invite e-mails should be sent.
func (c *Config) MailEnabled() bool {
	return c.Mail.Host != ""
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
