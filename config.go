package rage

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

// RunConfig configures Run. The zero value opens a DefaultStageWidth x
// DefaultStageHeight window titled "rage" at DefaultLogicRate.
type RunConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	LogicRate int    `yaml:"logic_rate"`
	ShowFPS   bool   `yaml:"show_fps"`
	Debug     bool   `yaml:"debug"`

	// LogFile, when set, sends the stage's JSON logs to a rotated file.
	LogFile    string `yaml:"log_file"`
	LogMaxSize int    `yaml:"log_max_size_mb"`

	// OnReady runs once, after the window is configured and before the first
	// frame. It is where the scene is usually built.
	OnReady func(g *Game) `yaml:"-"`
	// Update runs every tick after input has been forwarded to the stage.
	Update func() error `yaml:"-"`
}

// ParseRunConfig decodes a YAML run configuration and fills in defaults.
func ParseRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("rage: parse run config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadRunConfig reads and parses a YAML run configuration file.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("rage: read run config: %w", err)
	}
	return ParseRunConfig(data)
}

func (c *RunConfig) applyDefaults() {
	if c.Title == "" {
		c.Title = "rage"
	}
	if c.Width <= 0 {
		c.Width = DefaultStageWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultStageHeight
	}
	if c.LogicRate <= 0 {
		c.LogicRate = DefaultLogicRate
	}
	if c.LogMaxSize <= 0 {
		c.LogMaxSize = 10
	}
}

// logger builds the JSON file logger for LogFile, or returns nil when no log
// file is configured.
func (c *RunConfig) logger() (*slog.Logger, func() error) {
	if c.LogFile == "" {
		return nil, func() error { return nil }
	}
	w := &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    c.LogMaxSize,
		MaxBackups: 3,
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.logLevel()})), w.Close
}

func (c *RunConfig) logLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Run opens a window for stage and blocks until it is closed. A nil stage is
// created from cfg's size.
func Run(stage *Stage, cfg RunConfig) error {
	cfg.applyDefaults()
	if stage == nil {
		stage = NewStage(float64(cfg.Width), float64(cfg.Height))
	}

	logger, closeLog := cfg.logger()
	defer closeLog()
	if logger != nil {
		stage.SetLogger(logger)
	}
	stage.SetDebugMode(cfg.Debug)
	stage.SetLogicRate(cfg.LogicRate)

	game := NewGame(stage)
	game.SetUpdateFunc(cfg.Update)

	ebiten.SetWindowSize(int(stage.Width()), int(stage.Height()))
	ebiten.SetWindowTitle(cfg.Title)

	if cfg.ShowFPS {
		stage.AddChild(NewFPSWidget(stage, 4, 14))
	}
	if cfg.OnReady != nil {
		cfg.OnReady(game)
	}

	stage.Start(game)
	defer stage.Stop()
	stage.Logger().Info("run", "title", cfg.Title, "width", stage.Width(), "height", stage.Height())
	return ebiten.RunGame(game)
}
