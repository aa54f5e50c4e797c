package rage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseRunConfig(t *testing.T) {
	cfg, err := ParseRunConfig([]byte(`
title: Walker
width: 640
height: 360
logic_rate: 12
show_fps: true
log_file: logs/rage.log
`))
	if err != nil {
		t.Fatalf("ParseRunConfig: %v", err)
	}
	if cfg.Title != "Walker" || cfg.Width != 640 || cfg.Height != 360 {
		t.Errorf("window = %q %dx%d", cfg.Title, cfg.Width, cfg.Height)
	}
	if cfg.LogicRate != 12 || !cfg.ShowFPS {
		t.Errorf("LogicRate = %d, ShowFPS = %v", cfg.LogicRate, cfg.ShowFPS)
	}
	if cfg.LogFile != "logs/rage.log" || cfg.LogMaxSize != 10 {
		t.Errorf("log = %q (%d MB)", cfg.LogFile, cfg.LogMaxSize)
	}
}

func TestParseRunConfigDefaults(t *testing.T) {
	cfg, err := ParseRunConfig([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseRunConfig: %v", err)
	}
	if cfg.Title != "rage" {
		t.Errorf("Title = %q, want rage", cfg.Title)
	}
	if cfg.Width != DefaultStageWidth || cfg.Height != DefaultStageHeight {
		t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, DefaultStageWidth, DefaultStageHeight)
	}
	if cfg.LogicRate != DefaultLogicRate {
		t.Errorf("LogicRate = %d, want %d", cfg.LogicRate, DefaultLogicRate)
	}
}

func TestParseRunConfigInvalid(t *testing.T) {
	_, err := ParseRunConfig([]byte("width: ["))
	if err == nil || !strings.Contains(err.Error(), "parse run config") {
		t.Errorf("err = %v, want parse error", err)
	}
}

func TestLoadRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("title: file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	if cfg.Title != "file" {
		t.Errorf("Title = %q, want file", cfg.Title)
	}
	if _, err := LoadRunConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunConfigFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rage.log")
	cfg := RunConfig{LogFile: path, Debug: true}
	cfg.applyDefaults()

	logger, closeLog := cfg.logger()
	if logger == nil {
		t.Fatal("logger = nil with LogFile set")
	}
	logger.Debug("frame", "n", 1)
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"frame"`) {
		t.Errorf("log file = %q, want JSON record", data)
	}
}

func TestRunConfigNoLogFile(t *testing.T) {
	cfg := RunConfig{}
	logger, closeLog := cfg.logger()
	if logger != nil {
		t.Error("logger should be nil without LogFile")
	}
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}
}
