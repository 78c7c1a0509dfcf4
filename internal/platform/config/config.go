package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures all process configuration.
type Server struct {
	Addr          string
	ProvidersPath string
	LogLevel      string
	JWTSigningKey string

	// RedisURL switches the idempotency store to Redis when set.
	RedisURL string
	// IdempotencyTTL bounds Redis idempotency entries; zero keeps them forever.
	IdempotencyTTL time.Duration

	// KafkaBrokers switches the audit sink to Kafka when non-empty.
	KafkaBrokers []string
	AuditTopic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PAYROUTER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	providersPath := os.Getenv("PAYROUTER_PROVIDERS_FILE")
	if providersPath == "" {
		providersPath = "./providers.json"
	}

	logLevel := os.Getenv("PAYROUTER_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	jwtSigningKey := os.Getenv("PAYROUTER_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	var brokers []string
	if raw := os.Getenv("PAYROUTER_KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	var ttl time.Duration
	if raw := os.Getenv("PAYROUTER_IDEMPOTENCY_TTL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	return Server{
		Addr:           addr,
		ProvidersPath:  providersPath,
		LogLevel:       logLevel,
		JWTSigningKey:  jwtSigningKey,
		RedisURL:       os.Getenv("PAYROUTER_REDIS_URL"),
		IdempotencyTTL: ttl,
		KafkaBrokers:   brokers,
		AuditTopic:     os.Getenv("PAYROUTER_AUDIT_TOPIC"),
	}
}
