package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	EnvDevelopment = "development"

	minSigningKeyLength = 32
)

var (
	ErrMissingSigningKey = errors.New("api.jwt_signing_key is required")
	ErrWeakSigningKey    = fmt.Errorf("api.jwt_signing_key must be at least %d bytes", minSigningKeyLength)
	ErrMissingMongoURI   = errors.New("mongo.uri is required")
	ErrNoCORSOrigins     = errors.New("api.allowed_cors_domains must list at least one origin")
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Mongo    *MongoConfig    `mapstructure:"mongo"`
	Stripe   *StripeConfig   `mapstructure:"stripe"`
	ImageGen *ImageGenConfig `mapstructure:"image_gen"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	CookieTransport    bool          `mapstructure:"cookie_transport"`
	CookieSecure       bool          `mapstructure:"cookie_secure"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type MongoConfig struct {
	URI      string        `mapstructure:"uri"`
	Database string        `mapstructure:"database"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type StripeConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	Currency  string        `mapstructure:"currency"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type ImageGenConfig struct {
	ClipDropAPIKey string        `mapstructure:"clipdrop_api_key"`
	ClipDropURL    string        `mapstructure:"clipdrop_url"`
	ImgBBAPIKey    string        `mapstructure:"imgbb_api_key"`
	ImgBBURL       string        `mapstructure:"imgbb_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	// Heroku and friends hand the port over in PORT.
	if port := os.Getenv("PORT"); port != "" {
		conf.API.Port = port
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	// Values are consumed at boot; a reload only gets logged so operators know to restart.
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", EnvDevelopment)
	v.SetDefault("api.port", "5000")
	v.SetDefault("api.base_url", "localhost:5000")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:5173"})
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.cookie_transport", false)
	v.SetDefault("api.cookie_secure", false)
	v.SetDefault("api.request_timeout", 15*time.Second)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "medicampDB")
	v.SetDefault("mongo.timeout", 10*time.Second)
	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.currency", "usd")
	v.SetDefault("stripe.timeout", 20*time.Second)
	v.SetDefault("image_gen.clipdrop_api_key", "")
	v.SetDefault("image_gen.clipdrop_url", "")
	v.SetDefault("image_gen.imgbb_api_key", "")
	v.SetDefault("image_gen.imgbb_url", "")
	v.SetDefault("image_gen.timeout", 60*time.Second)
}

func (c *AppConfig) Validate() error {
	if c.API.JWTSigningKey == "" {
		return ErrMissingSigningKey
	}
	if c.API.Environment != EnvDevelopment && len(c.API.JWTSigningKey) < minSigningKeyLength {
		return ErrWeakSigningKey
	}
	if c.Mongo.URI == "" {
		return ErrMissingMongoURI
	}
	if len(c.API.AllowedCORSDomains) == 0 {
		return ErrNoCORSOrigins
	}

	return nil
}

func (c *APIConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}
