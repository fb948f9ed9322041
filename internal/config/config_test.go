package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "")
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("TOKEN_TTL_MIN", "")
	t.Setenv("FILE_MAX_MB", "")
	t.Setenv("S3_ENDPOINT", "")
	t.Setenv("S3_REGION", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_PUBLIC_BASE_URL", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.RunAddress != "localhost:8080" {
		t.Fatalf("RunAddress default expected 'localhost:8080', got %q", cfg.RunAddress)
	}
	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.TokenTTLMin != 60 {
		t.Fatalf("TokenTTLMin default expected 60, got %d", cfg.TokenTTLMin)
	}
	if cfg.FileMaxSizeMB != 50 {
		t.Fatalf("FileMaxSizeMB default expected 50, got %d", cfg.FileMaxSizeMB)
	}
	if cfg.S3Region != "us-east-1" || cfg.S3Bucket != "dockeeper" {
		t.Fatalf("S3 defaults unexpected: region=%q bucket=%q", cfg.S3Region, cfg.S3Bucket)
	}
	if cfg.S3PublicBaseURL != "" {
		t.Fatalf("S3PublicBaseURL must stay empty without endpoint, got %q", cfg.S3PublicBaseURL)
	}
}

func TestNewConfig_EnvWins(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "example.com:9090")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("TOKEN_TTL_MIN", "15")
	t.Setenv("S3_ENDPOINT", "http://minio:9000/")
	t.Setenv("S3_BUCKET", "cards")
	t.Setenv("S3_PUBLIC_BASE_URL", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.RunAddress != "example.com:9090" {
		t.Fatalf("RunAddress expected from env, got %q", cfg.RunAddress)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected 'top', got %q", cfg.AuthSecret)
	}
	if cfg.TokenTTLMin != 15 {
		t.Fatalf("TokenTTLMin expected 15, got %d", cfg.TokenTTLMin)
	}
	// публичный URL собирается из endpoint и бакета
	if cfg.S3PublicBaseURL != "http://minio:9000/cards" {
		t.Fatalf("S3PublicBaseURL expected derived URL, got %q", cfg.S3PublicBaseURL)
	}
}
