package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func readLog(t *testing.T, dir string, category Category) string {
	t.Helper()
	CloseAll()
	date := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, date+"_"+string(category)+".log"))
	if err != nil {
		t.Fatalf("Failed to read %s log: %v", category, err)
	}
	return string(data)
}

func TestDisabledModeWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Initialize(Options{DebugMode: false, Dir: dir}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	API("should not appear")
	if Get(CategoryAPI).Enabled() {
		t.Errorf("Expected no-op logger when debug_mode is false")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Expected no logs directory, stat err = %v", err)
	}
}

func TestAllCategoriesLog(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(Options{DebugMode: true, Level: "debug", Dir: dir}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	categories := []Category{CategoryBoot, CategoryAPI, CategoryAnimation, CategoryUI, CategoryConfig}
	for _, c := range categories {
		Get(c).Info("hello from %s", c)
	}
	for _, c := range categories {
		if got := readLog(t, dir, c); !strings.Contains(got, "hello from "+string(c)) {
			t.Errorf("Category %s log missing message, got: %s", c, got)
		}
	}
}

func TestCategoryToggle(t *testing.T) {
	dir := t.TempDir()
	err := Initialize(Options{
		DebugMode:  true,
		Dir:        dir,
		Categories: map[string]bool{"animation": false},
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	if IsCategoryEnabled(CategoryAnimation) {
		t.Errorf("Expected animation category disabled")
	}
	if !IsCategoryEnabled(CategoryUI) {
		t.Errorf("Expected unlisted category enabled")
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(Options{DebugMode: true, Level: "warn", Dir: dir}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	APIDebug("debug line")
	API("info line")
	APIError("error line")

	got := readLog(t, dir, CategoryAPI)
	if strings.Contains(got, "debug line") || strings.Contains(got, "info line") {
		t.Errorf("Expected debug/info filtered at warn level, got: %s", got)
	}
	if !strings.Contains(got, "error line") {
		t.Errorf("Expected error line, got: %s", got)
	}
}

func TestRequestLoggerJSON(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(Options{DebugMode: true, Level: "debug", JSONFormat: true, Dir: dir}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	WithRequestID(CategoryAPI, "req-123").WithField("endpoint", "/api/roast").Info("sent")

	got := readLog(t, dir, CategoryAPI)
	for _, want := range []string{`"req":"req-123"`, `"endpoint":"/api/roast"`, `"msg":"sent"`} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %s in %s", want, got)
		}
	}
}

func TestTimerStopWithThreshold(t *testing.T) {
	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	timer := StartTimer(CategoryAPI, "noop")
	if d := timer.StopWithThreshold(time.Hour); d < 0 {
		t.Errorf("Expected non-negative duration, got %v", d)
	}
}

func TestDebugModeRequiresDir(t *testing.T) {
	defer CloseAll()
	if err := Initialize(Options{DebugMode: true}); err == nil {
		t.Errorf("Expected error when debug mode has no directory")
	}
}
