package configs

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Port  string
	Debug bool

	StoreDriver string
	DatabaseURL string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	JWTSecret string
	RedisURL  string

	CorsAllowOrigins   []string
	RateLimitMax       int
	DeadlineWindowDays int
	CatalogSeedFile    string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("DEADLINE_WINDOW_DAYS", 30)
	v.SetDefault("CATALOG_SEED_FILE", "internals/seeds/catalog/data_catalog.json")
	v.AutomaticEnv()
	return v
}

// Load membaca ENV (setelah .env) ke Config. Tidak memvalidasi; panggil Validate untuk serve.
func Load() Config {
	v := newViper()
	return Config{
		Port:               v.GetString("PORT"),
		Debug:              v.GetBool("DEBUG"),
		StoreDriver:        strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSLMODE"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		RedisURL:           v.GetString("REDIS_URL"),
		CorsAllowOrigins:   splitCSV(v.GetString("CORS_ALLOW_ORIGINS")),
		RateLimitMax:       v.GetInt("RATE_LIMIT_MAX"),
		DeadlineWindowDays: v.GetInt("DEADLINE_WINDOW_DAYS"),
		CatalogSeedFile:    v.GetString("CATALOG_SEED_FILE"),
	}
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET belum diset")
	}
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DSN() == "" {
			return errors.New("DATABASE_URL atau DB_HOST/DB_NAME wajib untuk STORE_DRIVER=postgres")
		}
	case StoreDriverMemory:
	default:
		return errors.Errorf("STORE_DRIVER tidak dikenal: %q (postgres|memory)", c.StoreDriver)
	}
	if c.RateLimitMax <= 0 {
		return errors.New("RATE_LIMIT_MAX harus > 0")
	}
	if c.DeadlineWindowDays < 1 || c.DeadlineWindowDays > 365 {
		return errors.New("DEADLINE_WINDOW_DAYS harus 1..365")
	}
	return nil
}

// DSN: DATABASE_URL diutamakan, kalau kosong dirakit dari DB_*.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBHost == "" || c.DBName == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=scholartrack&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, firstNonEmpty(c.DBPort, "5432"), c.DBName, firstNonEmpty(c.DBSSLMode, "require"),
	)
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
