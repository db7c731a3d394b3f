package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"

	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	AppEnv              string
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	JWTSecret           string
	JWTTTL              time.Duration
	StorageDriver       string
	UploadsDir          string
	S3Bucket            string
	S3PublicURL         string
	S3Endpoint          string
	OverdueScanSchedule string
	CORSAllowOrigins    []string

	// GeneratedJWTSecret is set when Validate made up a development secret.
	GeneratedJWTSecret bool
}

// LoadConfig reads the configuration from the environment after loading .env,
// if present. Values already in the environment win over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	ttl := time.Duration(0)
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("JWT_TTL: %w", err)
		}
		ttl = parsed
	}

	return Config{
		AppEnv:              envOr("APP_ENV", EnvDevelopment),
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              envOr("DB_HOST", "localhost"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTTTL:              ttl,
		StorageDriver:       envOr("STORAGE_DRIVER", StorageLocal),
		UploadsDir:          envOr("UPLOADS_DIR", "uploads"),
		S3Bucket:            os.Getenv("S3_BUCKET"),
		S3PublicURL:         os.Getenv("S3_PUBLIC_URL"),
		S3Endpoint:          os.Getenv("S3_ENDPOINT"),
		OverdueScanSchedule: os.Getenv("OVERDUE_SCAN_SCHEDULE"),
		CORSAllowOrigins:    splitList(os.Getenv("CORS_ALLOW_ORIGINS")),
	}, nil
}

// Validate checks the settings the service cannot start without.
// Outside development JWT_SECRET is mandatory; in development a random
// per-process secret is generated instead.
func (c *Config) Validate() error {
	var errList []error

	if c.JWTSecret == "" {
		if c.AppEnv != EnvDevelopment {
			errList = append(errList, errors.New("JWT_SECRET is required outside development"))
		} else {
			secret, err := randomSecret()
			if err != nil {
				errList = append(errList, err)
			}
			c.JWTSecret = secret
			c.GeneratedJWTSecret = true
		}
	}

	if c.DBName == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}

	switch c.StorageDriver {
	case StorageLocal:
		if c.UploadsDir == "" {
			errList = append(errList, errors.New("UPLOADS_DIR is required for local storage"))
		}
	case StorageS3:
		if c.S3Bucket == "" {
			errList = append(errList, errors.New("S3_BUCKET is required for s3 storage"))
		}
		if c.S3PublicURL == "" {
			errList = append(errList, errors.New("S3_PUBLIC_URL is required for s3 storage"))
		}
	default:
		errList = append(errList, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageLocal, StorageS3, c.StorageDriver))
	}

	return errors.Join(errList...)
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate jwt secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
