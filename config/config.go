package config

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Warn("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return &Config, nil
}

type Config struct {
	APP
	Services
	Polling
	Cache
	DB
	Redis
	Kafka
}

type APP struct {
	PORT               string        `env:"APP_PORT" envDefault:"8080"`
	SettleRefreshDelay time.Duration `env:"APP_SETTLE_REFRESH_DELAY" envDefault:"1500ms"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`
}

// Services holds the three backend base URLs. They share no origin, every
// resource is addressed against the base of the service that owns it.
type Services struct {
	PaymentURL      string        `env:"PAYMENT_SERVICE_URL" envDefault:"http://localhost:8081/api"`
	MerchantURL     string        `env:"MERCHANT_SERVICE_URL" envDefault:"http://localhost:8082/api"`
	NotificationURL string        `env:"NOTIFICATION_SERVICE_URL" envDefault:"http://localhost:8083/api"`
	Timeout         time.Duration `env:"SERVICES_TIMEOUT" envDefault:"10s"`
	AuthToken       string        `env:"SERVICES_AUTH_TOKEN"`
}

type Polling struct {
	Interval    time.Duration `env:"POLL_INTERVAL" envDefault:"1500ms"`
	MaxAttempts int           `env:"POLL_MAX_ATTEMPTS" envDefault:"60"`
}

type Cache struct {
	Backend string `env:"CACHE_BACKEND" envDefault:"file"`
	Dir     string `env:"CACHE_DIR" envDefault:".dashboard-cache"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Kafka struct {
	Enabled          bool          `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string        `env:"KAFKA_MONITOR_GROUP_ID" envDefault:"dashboard-monitor"`
	SubscriberTopics string        `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"payment-created,payment-events"`
	PublishTopics    string        `env:"KAFKA_PUBLISH_TOPICS" envDefault:"dashboard.dlq"`
	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// Backoff returns the exponential delay before retry number attempt, capped
// at MaxDelay and spread by ±15% when Jitter is set.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * r.BaseDelay

	if delay > r.MaxDelay {
		delay = r.MaxDelay
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// ConfigureLogger applies the level and format settings to the standard logrus logger.
func (a APP) ConfigureLogger() {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown log level %q, falling back to info", a.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if a.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
