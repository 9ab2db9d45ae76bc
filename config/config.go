package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	ApiPort  string `json:"api_port" yaml:"api_port"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	Debug    bool   `json:"debug" yaml:"debug"` // gorm query log + gin debug mode

	Database    string `json:"database" yaml:"database"` // "sqlite3" ou "postgres"
	SqlitePath  string `json:"sqlite_path" yaml:"sqlite_path"`
	DbHost      string `json:"db_host" yaml:"db_host"`
	DbPort      string `json:"db_port" yaml:"db_port"`
	DbUser      string `json:"db_user" yaml:"db_user"`
	DbName      string `json:"db_name" yaml:"db_name"`
	DbPass      string `json:"db_pass" yaml:"db_pass"`
	DbSSLMode   string `json:"db_sslmode" yaml:"db_sslmode"`
	AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`

	CorsOrigins []string `json:"cors_origins" yaml:"cors_origins"`

	Security struct {
		JwtSecret             string `json:"jwt_secret" yaml:"jwt_secret"`
		AccessTokenTTLMinutes int    `json:"access_token_ttl_minutes" yaml:"access_token_ttl_minutes"`
		ResetCodeLen          int    `json:"reset_code_len" yaml:"reset_code_len"`
		ResetCodeTTLMinutes   int    `json:"reset_code_ttl_minutes" yaml:"reset_code_ttl_minutes"`
		BcryptCost            int    `json:"bcrypt_cost" yaml:"bcrypt_cost"`
	} `json:"security" yaml:"security"`

	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
		// forgot-password requests allowed per email per window
		ResetRequestLimit  int `json:"reset_request_limit" yaml:"reset_request_limit"`
		ResetWindowMinutes int `json:"reset_window_minutes" yaml:"reset_window_minutes"`
	} `json:"redis" yaml:"redis"`

	Images struct {
		Bucket        string `json:"bucket" yaml:"bucket"`
		Region        string `json:"region" yaml:"region"`
		PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
		MaxUploadMB   int    `json:"max_upload_mb" yaml:"max_upload_mb"`
	} `json:"images" yaml:"images"`

	// 0 disables the in-process sweep; the expire-rentals command still works.
	RentalExpiryIntervalMinutes int `json:"rental_expiry_interval_minutes" yaml:"rental_expiry_interval_minutes"`
}

// Get reads the configuration file (JSON, or YAML by extension), applies
// environment overrides and fills defaults. An empty path or a missing file
// yields defaults plus environment.
func Get(path string) (Configuration, error) {
	var c Configuration
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(path, b, &c); err != nil {
				return c, fmt.Errorf("config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return c, err
		}
	}
	applyEnv(&c)
	applyDefaults(&c)
	return c, nil
}

func decode(path string, b []byte, c *Configuration) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, c)
	default:
		return json.Unmarshal(b, c)
	}
}

func applyEnv(c *Configuration) {
	setString(&c.ApiPort, "PORT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Database, "DATABASE")
	setString(&c.SqlitePath, "SQLITE_PATH")
	setString(&c.DbHost, "DB_HOST")
	setString(&c.DbPort, "DB_PORT")
	setString(&c.DbUser, "DB_USER")
	setString(&c.DbName, "DB_NAME")
	setString(&c.DbPass, "DB_PASS")
	setString(&c.DbSSLMode, "DB_SSLMODE")
	setString(&c.Security.JwtSecret, "JWT_SECRET")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Images.Bucket, "IMAGES_BUCKET")
	setString(&c.Images.Region, "IMAGES_REGION")
	setString(&c.Images.PublicBaseURL, "IMAGES_PUBLIC_BASE_URL")
	if v := strings.TrimSpace(os.Getenv("AUTOMIGRATE")); v != "" {
		c.AutoMigrate = v == "1" || strings.EqualFold(v, "true")
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); v != "" {
		c.CorsOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.CorsOrigins = append(c.CorsOrigins, origin)
			}
		}
	}
	if v, err := strconv.Atoi(os.Getenv("RENTAL_EXPIRY_INTERVAL_MINUTES")); err == nil && v >= 0 {
		c.RentalExpiryIntervalMinutes = v
	}
}

func applyDefaults(c *Configuration) {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.SqlitePath == "" {
		c.SqlitePath = "db/database.db"
	}
	if c.DbSSLMode == "" {
		c.DbSSLMode = "disable"
	}
	if len(c.CorsOrigins) == 0 {
		c.CorsOrigins = []string{"*"}
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if c.Security.AccessTokenTTLMinutes <= 0 {
		c.Security.AccessTokenTTLMinutes = 24 * 60
	}
	if c.Security.ResetCodeLen <= 0 {
		c.Security.ResetCodeLen = 7
	}
	if c.Security.ResetCodeTTLMinutes <= 0 {
		c.Security.ResetCodeTTLMinutes = 10
	}
	if c.Security.BcryptCost <= 0 {
		c.Security.BcryptCost = 12
	}
	if c.Redis.ResetRequestLimit <= 0 {
		c.Redis.ResetRequestLimit = 5
	}
	if c.Redis.ResetWindowMinutes <= 0 {
		c.Redis.ResetWindowMinutes = 15
	}
	if c.Images.MaxUploadMB <= 0 {
		c.Images.MaxUploadMB = 8
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
