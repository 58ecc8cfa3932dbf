package config

import (
	"testing"
	"time"
)

func TestGet(t *testing.T) {
	t.Setenv("CFG_TEST_SET", "value")
	t.Setenv("CFG_TEST_BLANK", "   ")

	if got := Get("CFG_TEST_SET", "fallback"); got != "value" {
		t.Errorf("Get set = %q, want %q", got, "value")
	}
	if got := Get("CFG_TEST_BLANK", "fallback"); got != "fallback" {
		t.Errorf("Get blank = %q, want fallback", got)
	}
	if got := Get("CFG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Get missing = %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "42")
	t.Setenv("CFG_TEST_BAD_INT", "forty-two")

	if got := GetInt("CFG_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt = %d, want 42", got)
	}
	if got := GetInt("CFG_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetInt bad value = %d, want fallback 7", got)
	}
	if got := GetInt("CFG_TEST_MISSING", 7); got != 7 {
		t.Errorf("GetInt missing = %d, want fallback 7", got)
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("CFG_TEST_DUR", "90s")
	t.Setenv("CFG_TEST_BAD_DUR", "soon")

	if got := GetDuration("CFG_TEST_DUR", time.Minute); got != 90*time.Second {
		t.Errorf("GetDuration = %s, want 90s", got)
	}
	if got := GetDuration("CFG_TEST_BAD_DUR", time.Minute); got != time.Minute {
		t.Errorf("GetDuration bad value = %s, want fallback 1m", got)
	}
}
