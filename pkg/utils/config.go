package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	CookieName  string
	ExpiryHours int
}

type UploadConfig struct {
	Dir       string
	PublicURL string
	MaxImages int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_COOKIE", "session_token")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("UPLOAD_DIR", "public/uploads")
	viper.SetDefault("UPLOAD_PUBLIC_URL", "/uploads")
	viper.SetDefault("UPLOAD_MAX_IMAGES", 5)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			CookieName:  viper.GetString("SESSION_COOKIE"),
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Upload: UploadConfig{
			Dir:       viper.GetString("UPLOAD_DIR"),
			PublicURL: viper.GetString("UPLOAD_PUBLIC_URL"),
			MaxImages: viper.GetInt("UPLOAD_MAX_IMAGES"),
		},
	}

	return config, nil
}
