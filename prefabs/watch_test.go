package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsWatchedFile(t *testing.T) {
	for path, want := range map[string]bool{
		"prefabs/door.yaml": true,
		"levels/test.json":  true,
		"x.YML":             true,
		"assets/doors.png":  false,
		"notes.txt":         false,
	} {
		if got := IsWatchedFile(path); got != want {
			t.Fatalf("IsWatchedFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "door.yaml")
	if err := os.WriteFile(target, []byte("name: door\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "door.yaml" {
			t.Fatalf("event for %q, want door.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for edited prefab")
	}
}

func TestWatcherCollapsesBursts(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "level.json")
	for i := range 3 {
		if err := os.WriteFile(target, []byte{byte('0' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("no event for edited level")
	}
	select {
	case name := <-w.Events:
		t.Fatalf("burst reported twice, extra event for %q", name)
	case <-time.After(3 * settleDelay):
	}
}
