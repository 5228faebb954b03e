package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type AuthConfig struct {
	RevocationEnabled bool `yaml:"revocation_enabled"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Auth     AuthConfig     `yaml:"auth"`
}

type Config struct {
	Port              string
	GinMode           string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	JWTIssuer         string
	TokenTTL          time.Duration
	RevocationEnabled bool
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml once at startup, applying environment
// overrides on top. A .env file in the working directory is honored
// when present.
func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

// LoadFrom reads configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	ttl, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	dsn := configFile.Database.DSN
	host := env("DB_HOST", configFile.Database.Host)
	user := env("DB_USER", configFile.Database.User)
	pass := env("DB_PASS", configFile.Database.Password)
	name := env("DB_NAME", configFile.Database.Name)
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable", host, user, pass, name)
	}

	return &Config{
		Port:              env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:           configFile.App.GinMode,
		DSN:               dsn,
		RedisAddr:         configFile.Redis.Addr,
		RedisPassword:     configFile.Redis.Password,
		RedisDB:           configFile.Redis.DB,
		JWTSecret:         env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:         configFile.JWT.Issuer,
		TokenTTL:          ttl,
		RevocationEnabled: configFile.Auth.RevocationEnabled,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
