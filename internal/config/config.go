package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Key string

const (
	KeyUUID    Key = "uuid"
	KeyLogger  Key = "logger"
	KeyMetrics Key = "metrics"
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Kafka      Kafka
	Metrics    Metrics
	Logger     Logger
	Platform   Platform
	Centrifuge Centrifuge
}

type Service struct {
	Port string `env:"DIALOG_SERVICE_PORT"`
	Name string `env:"DIALOG_SERVICE_NAME" env-default:"dialog-service"`
}

type Postgres struct {
	User     string `env:"DIALOG_SERVICE_POSTGRES_USER"`
	Password string `env:"DIALOG_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"DIALOG_SERVICE_POSTGRES_DB"`
	Host     string `env:"DIALOG_SERVICE_POSTGRES_HOST"`
	Port     string `env:"DIALOG_SERVICE_POSTGRES_PORT"`
}

type Kafka struct {
	Host         string `env:"KAFKA_HOST"`
	Port         string `env:"KAFKA_PORT"`
	AccountTopic string `env:"ACCOUNT_EVENT_TOPIC"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("error read env variables: %s", err)
	}
	return cfg
}
