package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/kafka"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/logger"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// Circulation holds the loan-policy constants.
type Circulation struct {
	LoanPeriodDays int     `yaml:"loanPeriodDays" envconfig:"LOAN_PERIOD_DAYS" default:"14"`
	FineRatePerDay float64 `yaml:"fineRatePerDay" envconfig:"FINE_RATE_PER_DAY" default:"10"`
}

type Config struct {
	Server      HTTPServer      `yaml:"server"`
	Database    postgres.Config `yaml:"database"`
	Kafka       kafka.Config
	Circulation Circulation `yaml:"circulation"`
	Log         logger.Log  `yaml:"log"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
