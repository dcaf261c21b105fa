// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
		LogSQL     bool   `json:"log_sql"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
		CORSOrigins  []string      `json:"cors_origins"`
	}
}

// DSN returns the PostgreSQL connection string in key=value form.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// MigrationURL returns the connection string in URL form, as expected by
// the migration driver.
func (c *Config) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&search_path=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// Init reads the optional .env.<env> file at the project root. Environment
// variables take precedence over the file.
func Init(env string) {
	if env == "" {
		env = "dev"
	}

	if root, err := findProjectRoot(); err == nil {
		viper.SetConfigName(".env." + env)
		viper.SetConfigType("env")
		viper.AddConfigPath(root)
		_ = viper.ReadInConfig()
	}
	viper.AutomaticEnv()
}

func Load() *Config {
	viper.AutomaticEnv()
	setDefaults()

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = viper.GetString("DB_HOST")
	cfg.Database.Port = viper.GetString("DB_PORT")
	cfg.Database.User = viper.GetString("DB_USER")
	cfg.Database.Password = viper.GetString("DB_PASSWORD")
	cfg.Database.Name = viper.GetString("DB_NAME")
	cfg.Database.SSLMode = viper.GetString("DB_SSLMODE")
	cfg.Database.SearchPath = viper.GetString("DB_SCHEMA")
	cfg.Database.LogSQL = viper.GetBool("LOG_SQL")

	// JWT configuration
	cfg.JWT.Secret = viper.GetString("JWT_SECRET")
	cfg.JWT.ExpiryPeriod = viper.GetDuration("JWT_EXPIRY")

	// Server configuration
	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.CORSOrigins = splitList(viper.GetString("CORS_ORIGINS"))

	return cfg
}

func setDefaults() {
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "resadmin")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("LOG_SQL", false)
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("JWT_EXPIRY", "24h")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ORIGINS", "https://*,http://*")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// findProjectRoot walks up from the working directory to the directory
// holding go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		dir = parent
	}
}
