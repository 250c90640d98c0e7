package app

import (
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
	"github.com/yungbote/coursehub-backend/internal/services"
)

type Services struct {
	Course services.CourseService
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Course: services.NewCourseService(log, reposet.Course, reposet.Lesson),
	}
}
