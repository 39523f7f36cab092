package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("hint_color = \"#111111\"\n"), 0o644); err != nil {
		t.Fatalf("seed write: %v", err)
	}

	reloads := make(chan Settings, 4)
	w, err := NewWatcher(path, func(s Settings, err error) {
		if err != nil {
			t.Errorf("reload error: %v", err)
			return
		}
		reloads <- s
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("hint_color = \"#222222\"\n"), 0o644); err != nil {
		t.Fatalf("update write: %v", err)
	}

	select {
	case s := <-reloads:
		if s.HintColor != "#222222" {
			t.Errorf("reloaded HintColor = %q, want #222222", s.HintColor)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("seed write: %v", err)
	}

	reloads := make(chan struct{}, 4)
	w, err := NewWatcher(path, func(s Settings, err error) {
		reloads <- struct{}{}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("sibling write: %v", err)
	}

	select {
	case <-reloads:
		t.Error("reload fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("seed write: %v", err)
	}

	w, err := NewWatcher(path, func(s Settings, err error) {})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
