package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"postgres_password", "hunter2", "course_id", 7, "SQLITE_DSN", "file::memory:"})
	if len(got) != 6 {
		t.Fatalf("unexpected length: %d", len(got))
	}
	if got[1] != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", got[1])
	}
	if got[3] != 7 {
		t.Fatalf("course_id altered: %v", got[3])
	}
	if got[5] != "[REDACTED]" {
		t.Fatalf("dsn not redacted: %v", got[5])
	}
}

func TestSanitizeKVsKeepsDanglingKey(t *testing.T) {
	got := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	if len(got) != 3 || got[2] != "dangling" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("development", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	log, err := New("production", "warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Sync()
}
