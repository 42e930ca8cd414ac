package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	Mail     MailConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type MailConfig struct {
	// APIKey is the Resend API key. When empty the server falls back to a
	// log-only mailer, which keeps local development working offline.
	APIKey   string
	FromName string
	FromAddr string
}

type UploadConfig struct {
	// Dir is where uploaded files land on disk.
	Dir string
	// BaseURL prefixes stored file names in responses, e.g. http://host/files.
	BaseURL string
}

// Load builds the configuration from environment variables with defaults.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 3333)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "parcelo")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "parcelo")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL", "168h")
	viper.SetDefault("MAIL_API_KEY", "")
	viper.SetDefault("MAIL_FROM_NAME", "Parcelo")
	viper.SetDefault("MAIL_FROM_ADDR", "noreply@parcelo.dev")
	viper.SetDefault("UPLOAD_DIR", "tmp/uploads")
	viper.SetDefault("UPLOAD_BASE_URL", "http://localhost:3333/files")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	tokenTTL, err := time.ParseDuration(viper.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		Mail: MailConfig{
			APIKey:   viper.GetString("MAIL_API_KEY"),
			FromName: viper.GetString("MAIL_FROM_NAME"),
			FromAddr: viper.GetString("MAIL_FROM_ADDR"),
		},
		Upload: UploadConfig{
			Dir:     viper.GetString("UPLOAD_DIR"),
			BaseURL: viper.GetString("UPLOAD_BASE_URL"),
		},
	}

	return cfg, nil
}
