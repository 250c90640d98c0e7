package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursehub-backend/internal/data/repos"
	"github.com/yungbote/coursehub-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/coursehub-backend/internal/http/handlers"
	"github.com/yungbote/coursehub-backend/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	log := testutil.Logger(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	svc := services.NewCourseService(log, repos.NewCourseRepo(db, log), repos.NewLessonRepo(db, log))
	return NewRouter(RouterConfig{
		Log:           log,
		ServiceName:   "coursehub-test",
		CourseHandler: httpH.NewCourseHandler(log, svc),
		HealthHandler: httpH.NewHealthHandler(log, sqlDB),
	})
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouterServesCourseFlow(t *testing.T) {
	r := newTestRouter(t)

	if rec := serve(r, http.MethodGet, "/healthcheck", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthcheck: status=%d body=%s", rec.Code, rec.Body.String())
	}

	course := `{"courseId":1,"title":"Test Course","description":"Test Description","instructorName":"Test Instructor"}`
	if rec := serve(r, http.MethodPost, "/course/", course); rec.Code != http.StatusOK {
		t.Fatalf("create course: status=%d body=%s", rec.Code, rec.Body.String())
	}
	rec := serve(r, http.MethodPost, "/course/1/lesson", `{"lessonId":1,"title":"Test Lesson","content":"Test Content"}`)
	if rec.Code != http.StatusOK || rec.Body.String() != "true" {
		t.Fatalf("create lesson: status=%d body=%s", rec.Code, rec.Body.String())
	}
	rec = serve(r, http.MethodGet, "/course/lesson/1", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"title":"Test Lesson"`) ||
		!strings.Contains(rec.Body.String(), `"course":{"courseId":1,"title":"Test Course"`) {
		t.Fatalf("get lesson: status=%d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" || rec.Header().Get("X-Trace-Id") == "" {
		t.Fatal("expected request and trace id headers")
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	if rec := serve(r, http.MethodGet, "/catalog", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d want=404", rec.Code)
	}
}
