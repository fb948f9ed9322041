package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server settings
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	TokenTTLMin int    `env:"TOKEN_TTL_MIN"`

	// Upload limits
	FileMaxSizeMB int `env:"FILE_MAX_MB"`

	// Object storage (S3-совместимое, например MinIO)
	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3Region        string `env:"S3_REGION"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3AccessKey     string `env:"S3_ACCESS_KEY"`
	S3SecretKey     string `env:"S3_SECRET_KEY"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "адрес и порт сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.IntVar(&cfg.TokenTTLMin, "token-ttl", cfg.TokenTTLMin, "время жизни токена в минутах")
	flag.IntVar(&cfg.FileMaxSizeMB, "file-max-mb", cfg.FileMaxSizeMB, "максимальный размер загружаемого файла, МБ")
	flag.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "endpoint объектного хранилища")
	flag.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "регион объектного хранилища")
	flag.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "бакет для файлов карточек")
	flag.StringVar(&cfg.S3AccessKey, "s3-access-key", cfg.S3AccessKey, "access key хранилища")
	flag.StringVar(&cfg.S3SecretKey, "s3-secret-key", cfg.S3SecretKey, "secret key хранилища")
	flag.StringVar(&cfg.S3PublicBaseURL, "s3-public-url", cfg.S3PublicBaseURL, "публичный базовый URL файлов")

	flag.Parse()

	// Defaults
	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTLMin <= 0 {
		cfg.TokenTTLMin = 60
	}
	if cfg.FileMaxSizeMB <= 0 {
		cfg.FileMaxSizeMB = 50
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "dockeeper"
	}
	if cfg.S3PublicBaseURL == "" && cfg.S3Endpoint != "" {
		cfg.S3PublicBaseURL = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return cfg
}
