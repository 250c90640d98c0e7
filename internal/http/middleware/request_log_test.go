package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

func TestRequestLoggerUsesRouteTemplateAndLevel(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.Use(RequestLogger(logger.FromZap(zap.New(core))))
	r.GET("/course/lesson/:lessonId", func(c *gin.Context) {
		if c.Param("lessonId") == "500" {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, "ok")
	})

	for _, path := range []string{"/course/lesson/1", "/course/lesson/500", "/nowhere"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(headerRequestID, "req-"+path)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log lines, got %d", len(entries))
	}

	ok := entries[0].ContextMap()
	if entries[0].Level != zapcore.InfoLevel || ok["route"] != "/course/lesson/:lessonId" {
		t.Fatalf("unexpected 200 entry: level=%s fields=%v", entries[0].Level, ok)
	}
	if ok["request_id"] != "req-/course/lesson/1" || ok["bytes_out"] != int64(2) {
		t.Fatalf("unexpected 200 fields: %v", ok)
	}
	if _, has := ok["path"]; has {
		t.Fatalf("matched routes must not log the raw path: %v", ok)
	}

	if entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("500 should log at error, got %s", entries[1].Level)
	}

	miss := entries[2].ContextMap()
	if entries[2].Level != zapcore.WarnLevel || miss["route"] != unmatchedRoute || miss["path"] != "/nowhere" {
		t.Fatalf("unexpected 404 entry: level=%s fields=%v", entries[2].Level, miss)
	}
}
