package config

import (
	"os"
	"strings"

	stringsutil "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/strings"
)

// Server captures process-level configuration for the admin facade.
type Server struct {
	Addr         string
	DatabaseURL  string
	RedisAddr    string
	KafkaBrokers []string
	KafkaTopic   string
	AdminToken   string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. DatabaseURL, RedisAddr, and KafkaBrokers are optional: when unset the
// corresponding backend (Postgres querier, latest-identity mirror, Kafka
// publisher) is simply not wired and the in-memory querier serves instead.
func FromEnv() Server {
	addr := os.Getenv("LSV2_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	topic := os.Getenv("LSV2_KAFKA_TOPIC")
	if topic == "" {
		topic = "identity-events"
	}

	adminToken := os.Getenv("LSV2_ADMIN_TOKEN")
	if adminToken == "" {
		// Use a default for development - should be overridden in production
		adminToken = "dev-admin-token-change-in-production"
	}

	var brokers []string
	if raw := os.Getenv("LSV2_KAFKA_BROKERS"); raw != "" {
		brokers = stringsutil.DedupeAndTrim(strings.Split(raw, ","))
	}

	return Server{
		Addr:         addr,
		DatabaseURL:  os.Getenv("LSV2_DATABASE_URL"),
		RedisAddr:    os.Getenv("LSV2_REDIS_ADDR"),
		KafkaBrokers: brokers,
		KafkaTopic:   topic,
		AdminToken:   adminToken,
	}
}
