package app

import (
	httpH "github.com/yungbote/coursehub-backend/internal/http/handlers"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Course *httpH.CourseHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, store httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(log, store),
		Course: httpH.NewCourseHandler(log, serviceset.Course),
	}
}
