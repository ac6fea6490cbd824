package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration read from the environment.
//
// Optional integrations (redis, rabbitmq, pdf renderer) are disabled when
// their address is empty.
type Config struct {
	Port  int
	Auth  AuthConfig
	AWS   AWSConfig
	Redis RedisConfig
	Cache CacheConfig
	AMQP  AMQPConfig
	PDF   PDFConfig
}

type AuthConfig struct {
	Enabled bool
	Secret  string
}

type AWSConfig struct {
	Region           string
	DynamoDBEndpoint string
	RequestsTable    string
	AssignmentsTable string
	CompaniesTable   string
	CountersTable    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

type AMQPConfig struct {
	URL   string
	Queue string
}

type PDFConfig struct {
	URL     string
	Timeout time.Duration
}

const (
	defaultPort        = 8080
	defaultCacheTTL    = 60 * time.Second
	defaultCachePrefix = "coop"
	defaultEventsQueue = "request.changed"
	defaultPDFTimeout  = 10 * time.Second
)

// Load reads the configuration. Malformed numbers and durations fall back to
// their defaults with a log line.
func Load() Config {
	return Config{
		Port: getenvInt("APP_PORT", defaultPort),
		Auth: AuthConfig{
			Enabled: getenvBool("AUTH_ENABLED", true),
			Secret:  os.Getenv("JWT_SECRET"),
		},
		AWS: AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			RequestsTable:    os.Getenv("REQUESTS_TABLE"),
			AssignmentsTable: os.Getenv("ASSIGNMENTS_TABLE"),
			CompaniesTable:   os.Getenv("COMPANIES_TABLE"),
			CountersTable:    os.Getenv("COUNTERS_TABLE"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			Enabled: getenvBool("CACHE_ENABLED", true),
			TTL:     getenvDuration("CACHE_TTL", defaultCacheTTL),
			Prefix:  getenvDefault("CACHE_PREFIX", defaultCachePrefix),
		},
		AMQP: AMQPConfig{
			URL:   os.Getenv("RABBITMQ_URL"),
			Queue: getenvDefault("EVENTS_QUEUE", defaultEventsQueue),
		},
		PDF: PDFConfig{
			URL:     os.Getenv("PDF_RENDERER_URL"),
			Timeout: getenvDuration("PDF_RENDERER_TIMEOUT", defaultPDFTimeout),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %v", key, v, def)
		return def
	}
	return b
}

// getenvDuration accepts Go durations ("30s") or plain seconds ("30").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	log.Printf("[config] invalid %s=%q, using %s", key, v, def)
	return def
}
