package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Published CSV links for the Farmacia Bolaños workbook; override per
// deployment through the environment.
const (
	defaultCatalogURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQFZUyjvlU7g4HUvzNfJOAJAbkEKnYwAeBnTeeiZEJrvU0_-VyTfQHHAIJqb1GO9WyBuN3TYlBmXEBG/pub?gid=1886672096&single=true&output=csv"
	defaultOrdersURL  = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQFZUyjvlU7g4HUvzNfJOAJAbkEKnYwAeBnTeeiZEJrvU0_-VyTfQHHAIJqb1GO9WyBuN3TYlBmXEBG/pub?gid=693750954&single=true&output=csv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxUploadMB  int

	CachePath  string
	CatalogURL string
	OrdersURL  string
	SubmitURL  string
	CatalogTTL time.Duration
	OrdersTTL  time.Duration
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "32"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/inventario.log"),
		MaxUploadMB:  mb,
		CachePath:    getenv("CACHE_PATH", "data/feed-cache.db"),
		CatalogURL:   getenv("CATALOG_CSV_URL", defaultCatalogURL),
		OrdersURL:    getenv("ORDERS_CSV_URL", defaultOrdersURL),
		SubmitURL:    getenv("SUBMIT_URL", ""),
		CatalogTTL:   getdur("CATALOG_CACHE_TTL", 5*time.Minute),
		OrdersTTL:    getdur("ORDERS_CACHE_TTL", time.Second),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
