package envutil

import (
	"reflect"
	"testing"
	"time"
)

func TestStringFallsBackWhenBlank(t *testing.T) {
	t.Setenv("COURSEHUB_TEST_STR", "   ")
	if got := String("COURSEHUB_TEST_STR", "fallback", nil); got != "fallback" {
		t.Fatalf("got %q want fallback", got)
	}
	t.Setenv("COURSEHUB_TEST_STR", " value ")
	if got := String("COURSEHUB_TEST_STR", "fallback", nil); got != "value" {
		t.Fatalf("got %q want value", got)
	}
}

func TestIntAndBool(t *testing.T) {
	t.Setenv("COURSEHUB_TEST_INT", "abc")
	if got := Int("COURSEHUB_TEST_INT", 3, nil); got != 3 {
		t.Fatalf("invalid int: got %d want 3", got)
	}
	t.Setenv("COURSEHUB_TEST_INT", "12")
	if got := Int("COURSEHUB_TEST_INT", 3, nil); got != 12 {
		t.Fatalf("got %d want 12", got)
	}
	t.Setenv("COURSEHUB_TEST_BOOL", "on")
	if !Bool("COURSEHUB_TEST_BOOL", false, nil) {
		t.Fatal("expected true")
	}
	t.Setenv("COURSEHUB_TEST_BOOL", "maybe")
	if !Bool("COURSEHUB_TEST_BOOL", true, nil) {
		t.Fatal("invalid bool should return default")
	}
}

func TestSecondsAndList(t *testing.T) {
	t.Setenv("COURSEHUB_TEST_SECS", "9")
	if got := Seconds("COURSEHUB_TEST_SECS", 5*time.Second, nil); got != 9*time.Second {
		t.Fatalf("got %s want 9s", got)
	}
	t.Setenv("COURSEHUB_TEST_LIST", "a, ,b,")
	if got := List("COURSEHUB_TEST_LIST", nil, nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("got %#v", got)
	}
}
