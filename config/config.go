package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Guide specifics
	Content ContentConfig
	I18n    I18nConfig
	Session SessionConfig
	Chat    ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding headers
	// decide the client IP. Empty trusts no proxy.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

// ContentConfig points at on-disk content. Empty paths use the content built into the binary.
type ContentConfig struct {
	ChatbotPath      string
	ProcedurePath    string
	TranslationsPath string
}

type I18nConfig struct {
	DefaultLanguage string
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

type ChatConfig struct {
	RateLimitPerMin int
	ReplyDelay      time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return load(v)
}

// LoadFile loads configuration from an explicit file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")

	// Content
	cfg.Content.ChatbotPath = v.GetString("content.chatbot_path")
	cfg.Content.ProcedurePath = v.GetString("content.procedure_path")
	cfg.Content.TranslationsPath = v.GetString("content.translations_path")

	cfg.I18n.DefaultLanguage = v.GetString("i18n.default_language")

	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")

	cfg.Chat.RateLimitPerMin = v.GetInt("chat.rate_limit_per_min")
	cfg.Chat.ReplyDelay = v.GetDuration("chat.reply_delay")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", c.HTTPServer.Port)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive")
	}
	if c.Chat.RateLimitPerMin < 0 {
		return fmt.Errorf("chat.rate_limit_per_min must not be negative")
	}
	if c.Chat.ReplyDelay < 0 {
		return fmt.Errorf("chat.reply_delay must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.file_path", "")

	v.SetDefault("content.chatbot_path", "")
	v.SetDefault("content.procedure_path", "")
	v.SetDefault("content.translations_path", "")
	v.SetDefault("i18n.default_language", "en")

	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_sessions", 10000)
	v.SetDefault("chat.rate_limit_per_min", 60)
	v.SetDefault("chat.reply_delay", "0s")
}
