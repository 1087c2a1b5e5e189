package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bartgrantham/rbdsdecode/rds"
)

func withArgs(args []string, f func()) {
	saved := os.Args
	defer func() { os.Args = saved }()
	os.Args = args
	f()
}

func TestRunWrongArgCount(t *testing.T) {
	var got int
	withArgs([]string{"rdsstats"}, func() { got = run() })
	if got != 1 {
		t.Fatalf("run() = %d, want 1 for missing log path", got)
	}
}

func TestRunUnreadableFile(t *testing.T) {
	var got int
	withArgs([]string{"rdsstats", "/nonexistent/path/to/nothing.log"}, func() { got = run() })
	if got != 2 {
		t.Fatalf("run() = %d, want 2 for an unreadable file", got)
	}
}

func TestRunEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.log")
	if err := os.WriteFile(path, []byte("# nothing but a comment\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var got int
	withArgs([]string{"rdsstats", path}, func() { got = run() })
	if got != 3 {
		t.Fatalf("run() = %d, want 3 for a file with zero groups", got)
	}
}

func TestRunSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.log")
	if err := os.WriteFile(path, []byte("1234 0000 0000 0000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var got int
	withArgs([]string{"rdsstats", path}, func() { got = run() })
	if got != 0 {
		t.Fatalf("run() = %d, want 0", got)
	}
}

func TestDecodeODADispatchesByAppID(t *testing.T) {
	stats := &odaStats{}
	data := rds.NewData()
	decodeODA(rds.AIDRTPlus, data, rds.Blocks{}, rds.GroupType{Code: 11, Version: 'A'}, stats)
	decodeODA(rds.AIDTMC, data, rds.Blocks{}, rds.GroupType{Code: 8, Version: 'A'}, stats)
	decodeODA(rds.AIDITunes, data, rds.Blocks{}, rds.GroupType{Code: 11, Version: 'B'}, stats)

	if stats.rtPlusCnt != 1 || stats.tmcCnt != 1 || stats.itunesCnt != 1 {
		t.Fatalf("stats = %+v, want one hit each", stats)
	}
}

func TestClearODAResetsStats(t *testing.T) {
	stats := &odaStats{rtPlusCnt: 3, tmcCnt: 2, itunesCnt: 1}
	clearODA(stats)
	if *stats != (odaStats{}) {
		t.Fatalf("stats = %+v, want zero value after clear", stats)
	}
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := loadConfig(filepath.Join(dir, "does-not-exist.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaultConfig() {
		t.Fatalf("loadConfig() = %+v, want the defaults %+v", cfg, defaultConfig())
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rds.yaml")
	content := "advanced_ps_decoding: false\nenable_oda: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AdvancedPSDecoding || cfg.EnableODA {
		t.Fatalf("loadConfig() = %+v, want both flags false", cfg)
	}
}
