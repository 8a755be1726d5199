package router

import (
	"testing"
)

func TestTableExactAndPrefix(t *testing.T) {
	table := NewTable()

	handler := func(ctx any) error { return nil }
	table.Add("GET", "/", handler)
	table.Add("GET", "/echo/*text", handler)
	table.Add("GET", "/user-agent", handler)
	table.Add("GET", "/files/*name", handler)
	table.Add("POST", "/files/*name", handler)

	tests := []struct {
		method      string
		path        string
		shouldMatch bool
		pattern     string
		value       string
	}{
		{"GET", "/", true, "/", ""},
		{"GET", "/echo/abc", true, "/echo/*text", "abc"},
		{"GET", "/echo/", true, "/echo/*text", ""},
		{"GET", "/echo/a/echo/b", true, "/echo/*text", "a/echo/b"},
		{"GET", "/echo", false, "", ""},
		{"GET", "/user-agent", true, "/user-agent", ""},
		{"GET", "/user-agent/x", false, "", ""},
		{"GET", "/files/dir/a.txt", true, "/files/*name", "dir/a.txt"},
		{"POST", "/files/a.txt", true, "/files/*name", "a.txt"},
		{"POST", "/echo/abc", false, "", ""},
		{"PUT", "/", false, "", ""},
		{"GET", "/nope", false, "", ""},
	}

	for _, tt := range tests {
		m, ok := table.Find(tt.method, tt.path)
		if ok != tt.shouldMatch {
			t.Errorf("%s %s: expected match=%v, got match=%v", tt.method, tt.path, tt.shouldMatch, ok)
			continue
		}
		if !ok {
			continue
		}
		if m.Pattern != tt.pattern {
			t.Errorf("%s %s: expected pattern %s, got %s", tt.method, tt.path, tt.pattern, m.Pattern)
		}
		if m.Value != tt.value {
			t.Errorf("%s %s: expected value %q, got %q", tt.method, tt.path, tt.value, m.Value)
		}
	}
}

func TestTableParamName(t *testing.T) {
	table := NewTable()
	table.Add("GET", "/files/*name", func(ctx any) error { return nil })

	m, ok := table.Find("GET", "/files/foo.txt")
	if !ok {
		t.Fatal("Expected match")
	}
	if m.Param != "name" {
		t.Errorf("Expected param name, got %q", m.Param)
	}
}

func TestTableRegistrationOrder(t *testing.T) {
	table := NewTable()

	var hit string
	table.Add("GET", "/a/*rest", func(ctx any) error { hit = "wide"; return nil })
	table.Add("GET", "/a/b/*rest", func(ctx any) error { hit = "narrow"; return nil })

	m, ok := table.Find("GET", "/a/b/c")
	if !ok {
		t.Fatal("Expected match")
	}
	_ = m.Handler(nil)
	if hit != "wide" {
		t.Errorf("Expected first registered route to win, got %s", hit)
	}
}

func TestTableAddPanics(t *testing.T) {
	cases := []string{"", "relative", "/files/*", "/files/*name/more"}

	for _, pattern := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for pattern %q", pattern)
				}
			}()
			NewTable().Add("GET", pattern, func(ctx any) error { return nil })
		}()
	}
}

func BenchmarkTableFind(b *testing.B) {
	table := NewTable()
	handler := func(ctx any) error { return nil }
	table.Add("GET", "/", handler)
	table.Add("GET", "/echo/*text", handler)
	table.Add("GET", "/user-agent", handler)
	table.Add("GET", "/files/*name", handler)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Find("GET", "/files/report.txt")
	}
}
