package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	Checkout struct {
		PendingTTLSeconds int    `envconfig:"PENDING_TTL_SECONDS" default:"3600"`
		FeaturedLimit     int    `envconfig:"FEATURED_LIMIT"      default:"6"`
		Currency          string `envconfig:"CURRENCY"            default:"NGN"`
		Transfer          struct {
			BankName      string `envconfig:"BANK_NAME"      default:"Luna Bank Plc"`
			AccountName   string `envconfig:"ACCOUNT_NAME"   default:"Luna Shortlets Nigeria"`
			AccountNumber string `envconfig:"ACCOUNT_NUMBER" default:"0123456789"`
		} `envconfig:"TRANSFER"`
	} `envconfig:"CHECKOUT"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			Booking string `envconfig:"BOOKING" default:"luna.bookings"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		Gemini struct {
			APIKey          string  `envconfig:"API_KEY"`
			Model           string  `envconfig:"MODEL"             default:"gemini-1.5-flash"`
			Temperature     float32 `envconfig:"TEMPERATURE"       default:"0.2"`
			TimeoutSeconds  int     `envconfig:"TIMEOUT_SECONDS"   default:"20"`
			MaxRetry        int     `envconfig:"MAX_RETRY"         default:"2"`
			RetryWaitMillis int     `envconfig:"RETRY_WAIT_MILLIS" default:"300"`
		} `envconfig:"GEMINI"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
	defaultTTL  = 300
)

var (
	conf Config
	once sync.Once
	err  error
)

// Load reads an optional .env file into the environment and decodes the
// environment into a Config. A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	var cfg Config

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	if loadErr := godotenv.Load(envFiles...); loadErr != nil {
		log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
	}

	if processErr := envconfig.Process("", &cfg); processErr != nil {
		return cfg, fmt.Errorf("processing environment variables: %w", processErr)
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}

	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}

	if c.Cache.TTL <= 0 {
		c.Cache.TTL = defaultTTL
	}
}

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() {
		conf, err = Load()
		if err == nil {
			log.Info().Msg("Service configuration initialized successfully")
		}
	})

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return &conf
}
