package xdgdir

import (
	"path/filepath"
	"testing"
)

func TestData(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := Data("flash"); got != filepath.Join("/tmp/xdg-data", "flash") {
		t.Fatalf("got %q", got)
	}

	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/tester")
	want := filepath.Join("/home/tester", ".local", "share", "flash")
	if got := Data("flash"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	if got := Config("flash"); got != filepath.Join("/tmp/xdg-config", "flash") {
		t.Fatalf("got %q", got)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	want := filepath.Join("/home/tester", ".config", "flash")
	if got := Config("flash"); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
