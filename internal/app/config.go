package app

import (
	"time"

	"github.com/yungbote/coursehub-backend/internal/data/db"
	httpMW "github.com/yungbote/coursehub-backend/internal/http/middleware"
	"github.com/yungbote/coursehub-backend/internal/observability"
	"github.com/yungbote/coursehub-backend/internal/platform/envutil"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

type Config struct {
	Env             string
	HTTPAddr        string
	ShutdownTimeout time.Duration

	Store            db.Config
	CORSAllowOrigins []string
	Otel             observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	env := envutil.String("APP_ENV", "development", log)
	return Config{
		Env:             env,
		HTTPAddr:        envutil.String("HTTP_ADDR", ":8080", log),
		ShutdownTimeout: envutil.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 5*time.Second, log),
		Store: db.Config{
			Driver:    envutil.String("STORE_DRIVER", db.DriverSQLite, log),
			SQLiteDSN: envutil.String("SQLITE_DSN", db.DefaultSQLiteDSN, log),
			Postgres: db.PostgresConfig{
				Host:     envutil.String("POSTGRES_HOST", "localhost", log),
				Port:     envutil.String("POSTGRES_PORT", "5432", log),
				User:     envutil.String("POSTGRES_USER", "postgres", log),
				Password: envutil.String("POSTGRES_PASSWORD", "", log),
				Name:     envutil.String("POSTGRES_NAME", "coursehub", log),
				SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
			},
		},
		CORSAllowOrigins: envutil.List("CORS_ALLOW_ORIGINS", httpMW.DefaultAllowOrigins, log),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "coursehub", log),
			Environment: env,
			Version:     envutil.String("APP_VERSION", "dev", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1.0, log),
		},
	}
}

// NewLogger builds the process logger from LOG_MODE and LOG_LEVEL.
func NewLogger() (*logger.Logger, error) {
	return logger.New(
		envutil.String("LOG_MODE", "development", nil),
		envutil.String("LOG_LEVEL", "debug", nil),
	)
}
