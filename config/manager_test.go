package config

import (
	"testing"
)

func TestManagerGetters(t *testing.T) {
	m := NewManager()
	m.Set("name", "http-lite")
	m.Set("port", "4221")
	m.Set("workers", 8.0)

	if got := m.GetString("name"); got != "http-lite" {
		t.Errorf("GetString = %q", got)
	}
	if got := m.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := m.GetInt("port"); got != 4221 {
		t.Errorf("GetInt string = %d", got)
	}
	if got := m.GetInt("workers"); got != 8 {
		t.Errorf("GetInt float = %d", got)
	}
	if got := m.GetInt("missing", 3); got != 3 {
		t.Errorf("GetInt default = %d", got)
	}
}

func TestManagerLoadFromEnv(t *testing.T) {
	t.Setenv("TESTAPP_STATS_ADDR", ":9000")
	t.Setenv("OTHER_VALUE", "ignored")

	m := NewManager()
	m.LoadFromEnv("TESTAPP_")

	if got := m.GetString("stats.addr"); got != ":9000" {
		t.Errorf("Expected stats.addr :9000, got %q", got)
	}
	if _, ok := m.Get("other.value"); ok {
		t.Error("Expected variables without the prefix to be skipped")
	}
}

func TestManagerUnmarshal(t *testing.T) {
	type target struct {
		Name    string `config:"app.name"`
		Port    int
		Verbose bool
	}

	m := NewManager()
	m.Set("svc.app.name", "demo")
	m.Set("svc.port", 8080.0)
	m.Set("svc.verbose", "yes")

	var got target
	if err := m.Unmarshal("svc", &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got != (target{Name: "demo", Port: 8080, Verbose: true}) {
		t.Errorf("Unexpected result %+v", got)
	}

	m.Set("svc.port", 1.5)
	if err := m.Unmarshal("svc", &got); err == nil {
		t.Error("Expected error for a fractional port")
	}
	if err := m.Unmarshal("svc", got); err == nil {
		t.Error("Expected error for a non-pointer target")
	}
}
