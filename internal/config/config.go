package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InsecureSecret is the token-signing fallback used when JWT_SECRET is
// not set. Fine for local runs only.
const InsecureSecret = "dev-insecure-secret"

type Config struct {
	Port            int
	JWTSecret       string
	AdminPassword   string
	TokenTTL        time.Duration
	StaticDir       string
	CatalogFile     string
	CORSOrigins     []string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// InsecureDefaults reports whether the signing secret or the admin
// password were left at their built-in values.
func (c Config) InsecureDefaults() bool {
	return c.JWTSecret == InsecureSecret || c.AdminPassword == "admin123"
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", 3000)
	v.SetDefault("jwt_secret", InsecureSecret)
	v.SetDefault("admin_password", "admin123")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("static_dir", "public")
	v.SetDefault("catalog_file", "")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", "10s")

	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("admin_password", "ADMIN_PASSWORD")
	_ = v.BindEnv("token_ttl", "TOKEN_TTL")
	_ = v.BindEnv("static_dir", "STATIC_DIR")
	_ = v.BindEnv("catalog_file", "CATALOG_FILE")
	_ = v.BindEnv("cors_origins", "CORS_ORIGINS")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("shutdown_timeout", "SHUTDOWN_TIMEOUT")

	ttl, err := time.ParseDuration(v.GetString("token_ttl"))
	if err != nil {
		return Config{}, err
	}
	shutdown, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:            v.GetInt("port"),
		JWTSecret:       v.GetString("jwt_secret"),
		AdminPassword:   v.GetString("admin_password"),
		TokenTTL:        ttl,
		StaticDir:       strings.TrimSpace(v.GetString("static_dir")),
		CatalogFile:     strings.TrimSpace(v.GetString("catalog_file")),
		CORSOrigins:     splitList(v.GetString("cors_origins")),
		LogLevel:        v.GetString("log_level"),
		ShutdownTimeout: shutdown,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
