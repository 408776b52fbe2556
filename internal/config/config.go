package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DevJWTSecret is only accepted when APP_ENV=development.
	DevJWTSecret = "workproof-development-secret"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set outside development")

type Config struct {
	App struct {
		Env string `mapstructure:"env"`
	} `mapstructure:"app"`

	HTTP struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"http"`

	Gin struct {
		Mode string `mapstructure:"mode"`
	} `mapstructure:"gin"`

	DB DatabaseConfig `mapstructure:"db"`

	JWT struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"jwt"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`

	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`

	OTel struct {
		Endpoint string `mapstructure:"endpoint"`
		Insecure bool   `mapstructure:"insecure"`
	} `mapstructure:"otel"`

	Minio MinioConfig `mapstructure:"minio"`

	Notify struct {
		SMSProvider     string `mapstructure:"sms_provider"`
		SMSWebhookURL   string `mapstructure:"sms_webhook_url"`
		EmailProvider   string `mapstructure:"email_provider"`
		EmailWebhookURL string `mapstructure:"email_webhook_url"`
	} `mapstructure:"notify"`

	// JWTFallback is set when the development secret was substituted.
	JWTFallback bool `mapstructure:"-"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"` // postgres | mysql | sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // file path for sqlite
	SSLMode  string `mapstructure:"sslmode"`
}

// MinioConfig configures the optional receipt archive. An empty endpoint disables it.
type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

// Load reads configuration from the environment and an optional config file.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") == EnvDevelopment {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("config read error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", EnvProduction)
	v.SetDefault("http.port", "8080")
	v.SetDefault("gin.mode", "release")

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "workproof")
	v.SetDefault("db.password", "workproof")
	v.SetDefault("db.name", "workproof")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("jwt.secret", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.insecure", false)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "workproof-receipts")
	v.SetDefault("minio.use_ssl", false)

	v.SetDefault("notify.sms_provider", "log")
	v.SetDefault("notify.sms_webhook_url", "")
	v.SetDefault("notify.email_provider", "log")
	v.SetDefault("notify.email_webhook_url", "")
}

func validate(c *Config) error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		if !c.IsDevelopment() {
			return ErrMissingJWTSecret
		}
		c.JWT.Secret = DevJWTSecret
		c.JWTFallback = true
	}
	if strings.TrimSpace(c.HTTP.Port) == "" {
		return errors.New("http.port must not be empty")
	}
	switch c.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	return nil
}
