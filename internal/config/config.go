package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	User     UserConfig     `mapstructure:"user"`
	Vocab    VocabConfig    `mapstructure:"vocab"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite3"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
	// MaxRetryAttempts is how many times a failed progress write is retried
	MaxRetryAttempts uint `mapstructure:"max_retry_attempts"`
}

type QuizConfig struct {
	QuestionCount int   `mapstructure:"question_count" validate:"min=4"`
	Seed          int64 `mapstructure:"seed"`
}

type UserConfig struct {
	ID string `mapstructure:"id" validate:"required"`
}

type VocabConfig struct {
	SetsDirectory string `mapstructure:"sets_directory" validate:"omitempty,dir"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/menglish")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "menglish")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.max_retry_attempts", 2)
	v.SetDefault("quiz.question_count", 10)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("user.id", "local")
	v.SetDefault("vocab.sets_directory", "")

	// Secrets come from the environment only
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("user.id", "MENGLISH_USER_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind MENGLISH_USER_ID environment variable: %w", err)
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
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads the configuration from configFile, or from the default locations when empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
