package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite3"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Learning LearningConfig `mapstructure:"learning"`
	Review   ReviewConfig   `mapstructure:"review"`
	Server   ServerConfig   `mapstructure:"server"`
	Client   ClientConfig   `mapstructure:"client"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"required,oneof=sqlite3 mysql postgres"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
	ConnectAttempts uint              `mapstructure:"connect_attempts" validate:"gte=1"`
}

type LearningConfig struct {
	MaxLevel          int `mapstructure:"max_level" validate:"gte=1,lte=40"`
	RelearnStartLevel int `mapstructure:"relearn_start_level" validate:"gte=0,ltfield=MaxLevel"`
	DueLimit          int `mapstructure:"due_limit" validate:"gte=1"`
	ReviewLimit       int `mapstructure:"review_limit" validate:"gte=1"`
}

type ReviewConfig struct {
	// Optional; the embedded template is used when empty.
	HTMLTemplate string `mapstructure:"html_template" validate:"omitempty,file"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"gte=1,lte=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ClientConfig struct {
	ServerURL      string `mapstructure:"server_url" validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/jankenoboe")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	// A missing .env is normal; anything else means the file exists but is broken.
	if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
	}

	v := loader.viper

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "datasource.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.database", "jankenoboe")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.connect_attempts", 3)
	v.SetDefault("learning.max_level", 20)
	v.SetDefault("learning.relearn_start_level", 7)
	v.SetDefault("learning.due_limit", 100)
	v.SetDefault("learning.review_limit", 500)
	v.SetDefault("review.html_template", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("client.server_url", "")
	v.SetDefault("client.timeout_seconds", 30)

	bindings := map[string]string{
		"database.path":     "JANKENOBOE_DB",
		"database.password": "DB_PASSWORD",
		"server.port":       "PORT",
		"client.server_url": "JANKENOBOE_SERVER",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
