package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// ───── Infrastructure ─────
	DatabaseURL  string
	RedisAddr    string
	KafkaBrokers []string

	DBMaxOpenConns int
	DBMaxIdleConns int

	// ───── Runtime ─────
	HTTPAddr       string
	ObsHTTPAddr    string
	ServiceName    string
	RequestTimeout time.Duration

	// ───── GraphQL ─────
	GraphQLPath       string
	GraphQLDepthLimit int

	// ───── Cache / Outbox ─────
	MemberTypeCacheTTL time.Duration
	OutboxPollInterval time.Duration
	OutboxBatchSize    int

	// ───── JWT Security ─────
	AuthEnabled bool
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// ───── Rate Limiting ─────
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// ───── Observability ─────
	TracingEnabled bool
	JaegerURL      string
}

// Load reads the environment, after applying a .env file when one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		// Infra
		DatabaseURL:  mustEnv("DATABASE_URL"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		KafkaBrokers: getEnvSlice("KAFKA_BROKERS", nil),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		// Runtime
		HTTPAddr:       fixPort(getEnv("HTTP_ADDR", ":8080")),
		ObsHTTPAddr:    fixPort(getEnv("OBS_HTTP_ADDR", ":8090")),
		ServiceName:    getEnv("SERVICE_NAME", "blog-graphql"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),

		// GraphQL
		GraphQLPath:       getEnv("GRAPHQL_PATH", "/graphql"),
		GraphQLDepthLimit: getEnvInt("GRAPHQL_DEPTH_LIMIT", 5),

		// Cache / Outbox
		MemberTypeCacheTTL: getEnvDuration("MEMBER_TYPE_CACHE_TTL", time.Hour),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		OutboxBatchSize:    getEnvInt("OUTBOX_BATCH_SIZE", 50),

		// JWT
		AuthEnabled: getEnvBool("AUTH_ENABLED", false),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", ""),
		JWTAudience: getEnv("JWT_AUDIENCE", ""),

		// Rate limiting
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 0),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		// Observability
		TracingEnabled: getEnvBool("TRACING_ENABLED", false),
		JaegerURL:      getEnv("JAEGER_URL", "http://jaeger:14268/api/traces"),
	}

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		log.Fatalf("missing required env: %s", "JWT_SECRET")
	}
	return cfg
}

func fixPort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}

func getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}

func getEnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int env %s: %v", k, err)
	}
	return i
}

func getEnvBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return strings.ToLower(v) == "true"
}

func getEnvDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}

	dur, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration env %s: %v", k, err)
	}
	return dur
}

func getEnvSlice(k string, d []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
