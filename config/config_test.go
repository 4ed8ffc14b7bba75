package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nstehr/vimy/vimy-hero/config"
	"github.com/nstehr/vimy/vimy-hero/model"
)

const validYAML = `
server:
  socket: /tmp/test-hero.sock
  log_level: debug
policy:
  school_gold: 1500
behaviors:
  - name: mines
    kinds: [mine]
  - name: gold-mines
    kinds: [mine]
    sub_ids: [6]
  - name: relic
    objects: [42]
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %q: %v", path, err)
	}
}

func TestLoadFromReader(t *testing.T) {
	cfg, err := config.LoadFromReader(strings.NewReader(validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Socket != "/tmp/test-hero.sock" {
		t.Errorf("socket = %q", cfg.Server.Socket)
	}
	if cfg.Policy.SchoolGold != 1500 {
		t.Errorf("school_gold = %d, want 1500", cfg.Policy.SchoolGold)
	}
	// unset policy fields keep their defaults
	if cfg.Policy.LibraryLevel != 12 {
		t.Errorf("library_level = %d, want default 12", cfg.Policy.LibraryLevel)
	}
	if len(cfg.Behaviors) != 3 {
		t.Fatalf("got %d behaviors, want 3", len(cfg.Behaviors))
	}
	if cfg.Behaviors[0].Kinds[0] != model.Mine || cfg.Behaviors[0].Specific() {
		t.Errorf("behavior 0 = %+v", cfg.Behaviors[0])
	}
	if !cfg.Behaviors[2].Specific() {
		t.Errorf("behavior 2 should be specific: %+v", cfg.Behaviors[2])
	}
}

func TestLoadFromReaderGates(t *testing.T) {
	src := "policy:\n  gates:\n    - name: rich-mines\n      kind: mine\n      condition: \"Gold() >= 300\"\n"
	cfg, err := config.LoadFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Policy.Gates) != 1 {
		t.Fatalf("got %d gates, want 1", len(cfg.Policy.Gates))
	}
	g := cfg.Policy.Gates[0]
	if g.Name != "rich-mines" || g.Kind != model.Mine || g.Condition != "Gold() >= 300" {
		t.Errorf("gate = %+v", g)
	}
}

func TestLoadFromReaderEmptyUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Socket != config.DefaultSocket || len(cfg.Behaviors) != 1 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name, yaml, want string
	}{
		{"bad log level", "server:\n  log_level: bananas\n", "log_level"},
		{"mixed modes", "behaviors:\n  - objects: [1]\n    kinds: [mine]\n", "cannot be combined"},
		{"sub ids alone", "behaviors:\n  - sub_ids: [1]\n", "sub_ids require kinds"},
		{"no behaviors", "behaviors: []\n", "at least one behavior"},
		{"unknown field", "server:\n  port: 9\n", "port"},
		{"gate without condition", "policy:\n  gates:\n    - name: g\n      kind: mine\n", "condition are required"},
		{"gate does not compile", "policy:\n  gates:\n    - name: g\n      kind: mine\n      condition: \"Gold( >\"\n", "policy.gates"},
	}
	for _, tc := range tests {
		_, err := config.LoadFromReader(strings.NewReader(tc.yaml))
		if err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q should mention %q", tc.name, err, tc.want)
		}
	}
}

func TestWatcherDetectsChange(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, validYAML)

	var mu sync.Mutex
	var got *config.Config
	changed := make(chan struct{}, 1)

	w, err := config.NewWatcher(cfgPath, func(_, n *config.Config) {
		mu.Lock()
		got = n
		mu.Unlock()
		select {
		case changed <- struct{}{}:
		default:
		}
	}, config.WithInterval(20*time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	// Make sure the mtime moves even on coarse filesystems.
	time.Sleep(50 * time.Millisecond)
	writeFile(t, cfgPath, strings.Replace(validYAML, "1500", "3000", 1))
	future := time.Now().Add(time.Second)
	if err := os.Chtimes(cfgPath, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for config change")
	}

	mu.Lock()
	defer mu.Unlock()
	if got.Policy.SchoolGold != 3000 {
		t.Errorf("school_gold = %d, want 3000", got.Policy.SchoolGold)
	}
	if w.Current().Policy.SchoolGold != 3000 {
		t.Errorf("Current() not updated")
	}
}

func TestWatcherKeepsConfigOnInvalidEdit(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, validYAML)

	w, err := config.NewWatcher(cfgPath, nil, config.WithInterval(20*time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	writeFile(t, cfgPath, "server:\n  log_level: bananas\n")
	future := time.Now().Add(time.Second)
	_ = os.Chtimes(cfgPath, future, future)
	time.Sleep(100 * time.Millisecond)

	if w.Current().Server.LogLevel != "debug" {
		t.Errorf("log_level = %q, want previous value debug", w.Current().Server.LogLevel)
	}
}

func TestNewWatcherMissingFile(t *testing.T) {
	if _, err := config.NewWatcher("/nonexistent/path.yaml", nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}
