package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "8MB"
	defaultGeocodingTimeout   = 8 * time.Second
	defaultSessionMaxAge      = 7 * 24 * time.Hour
	defaultBcryptCost         = 12
	defaultWorkerPort         = 8081
)

// Config is the web app and worker configuration, loaded from config/config.yaml.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		BaseURL            string `json:"baseUrl" yaml:"baseUrl"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Session SessionConfig `json:"session" yaml:"session"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Geocoding configuration for resolving listing locations
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Storage configuration for listing images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Listing *ListingConfig `json:"listing" yaml:"listing"`

	// Worker configuration for the Pub/Sub push consumer
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// MongoConfig defines the document store holding listings and reviews
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// RedisConfig defines the cache used for geocoding results
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// SessionConfig defines the cookie session settings
type SessionConfig struct {
	Name   string        `json:"name" yaml:"name"`
	Secret string        `json:"secret" yaml:"secret"`
	MaxAge time.Duration `json:"maxAge" yaml:"maxAge"`
	Secure bool          `json:"secure" yaml:"secure"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// GeocodingConfig defines the geocoding provider settings
type GeocodingConfig struct {
	// Nominatim base URL, defaults to the public OpenStreetMap instance
	NominatimURL string        `json:"nominatimUrl" yaml:"nominatimUrl"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL     time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// StorageConfig defines where uploaded listing images are kept
type StorageConfig struct {
	// gocloud bucket URL, e.g. file:///var/lib/haven/uploads, gs://bucket, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// Public prefix used to build image URLs
	PublicPath string `json:"publicPath" yaml:"publicPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ListingConfig defines listing presentation defaults
type ListingConfig struct {
	DefaultImageURL string `json:"defaultImageUrl" yaml:"defaultImageUrl"`
}

// WorkerConfig defines the event worker's push endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

func New() (*Config, error) {
	// A missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Session.Name == "" {
		cfg.Session.Name = "haven_session"
	}
	if cfg.Session.MaxAge <= 0 {
		cfg.Session.MaxAge = defaultSessionMaxAge
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = defaultGeocodingTimeout
	}
	if cfg.Listing == nil {
		cfg.Listing = &ListingConfig{}
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}
