package app

import (
	apphttp "github.com/yungbote/coursehub-backend/internal/http"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, handlers Handlers) *apphttp.Server {
	routerCfg := apphttp.RouterConfig{
		Log:           log,
		AllowOrigins:  cfg.CORSAllowOrigins,
		CourseHandler: handlers.Course,
		HealthHandler: handlers.Health,
	}
	if cfg.Otel.Enabled {
		routerCfg.ServiceName = cfg.Otel.ServiceName
	}
	return apphttp.NewServer(routerCfg, cfg.HTTPAddr)
}
