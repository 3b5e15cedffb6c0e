package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string        `yaml:"env" env-default:"local"`
	TimeZone   string        `yaml:"time_zone" env:"TIME_ZONE" env-default:"UTC"`
	Secret     string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env-default:"1h"`
	Storage    Storage       `yaml:"storage"`
	Cache      Cache         `yaml:"cache"`
	Users      []User        `yaml:"users"`
	HTTPServer `yaml:"http_server"`
}

type Storage struct {
	Driver   string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path     string `yaml:"path" env:"STORAGE_PATH" env-default:"./storage/articles.db"`
	DSN      string `yaml:"dsn" env:"DATABASE_DSN"`
	MaxConns int32  `yaml:"max_conns" env-default:"10"`
}

type Cache struct {
	Enabled  bool          `yaml:"enabled" env:"CACHE_ENABLED" env-default:"false"`
	Address  string        `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env-default:"1m"`
}

// User is an account allowed to call protected routes. Password is only meant
// for local setups, it is hashed on start-up. Prefer PasswordHash elsewhere.
type User struct {
	Name         string   `yaml:"name"`
	Password     string   `yaml:"password"`
	PasswordHash string   `yaml:"password_hash"`
	Roles        []string `yaml:"roles"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

func MustLoad() *Config {
	// A missing .env is fine, values may come from the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Panicf("error reading .env file: %v", err)
	}

	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	cfg, err := Load(path)
	if err != nil {
		log.Panicf("error loading config: %v", err)
	}

	return cfg
}

// Load reads the YAML file at path, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: error opening config file: %w", op, err)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: error reading config file: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// Location resolves the reference time zone used for statistics.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return errors.New("storage path is empty")
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return errors.New("storage dsn is empty")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", c.Cache.TTL)
	}

	for _, u := range c.Users {
		if u.Name == "" {
			return errors.New("user name is empty")
		}
		if u.Password == "" && u.PasswordHash == "" {
			return fmt.Errorf("user %q has no password", u.Name)
		}
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}

	return nil
}

func fetchConfigPath() string {
	var path string
	flag.StringVar(&path, "config", "", "sets path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
