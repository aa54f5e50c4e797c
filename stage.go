package rage

import (
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// Default stage dimensions and logic rate.
const (
	DefaultStageWidth  = 550
	DefaultStageHeight = 400
	DefaultLogicRate   = 30
)

// EntityStore is the interface for optional ECS integration.
// When set on a Stage, pointer events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries pointer interaction data for the ECS bridge.
type InteractionEvent struct {
	Type   EventType
	NodeID uint32
	Name   string
	X, Y   float64
}

// Stage is the root container. It owns the drawing surface, the render clock
// and the logic clock derived from it: every LogicRate refreshes it dispatches
// EventAnimUpdate on itself, which MovieClips use to advance their frames.
//
// Stages are independent values; nothing in the package refers to a global
// stage. Objects that need the clock or the surface take the stage explicitly.
type Stage struct {
	Container

	surface Surface
	logger  *slog.Logger
	store   EntityStore
	debug   bool

	logicRate      int
	ticksRemaining int

	// Frame loop
	running bool
	loopGen uint64

	// Input
	hovered     map[DisplayObject]bool
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	loader imageLoader

	// ScreenshotDir is where Screenshot writes captures. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewStage creates a stage of the given size with no surface attached.
// Draw calls are discarded until SetSurface is called.
func NewStage(width, height float64) *Stage {
	s := &Stage{
		surface:   nopSurface{},
		logger:    slog.Default().With("lib", "rage"),
		logicRate: DefaultLogicRate,
		hovered:   make(map[DisplayObject]bool),
	}
	s.ticksRemaining = s.logicRate
	s.loader.init(os.DirFS("."))
	s.initContainer(s, "stage", 0, 0, width, height)
	s.On(EventResize, func(Event) { s.resize() })
	return s
}

// resize reconciles the surface dimensions with the stage's.
func (s *Stage) resize() {
	s.surface.Resize(int(s.Width()), int(s.Height()))
}

// Surface returns the attached surface.
func (s *Stage) Surface() Surface {
	return s.surface
}

// SetSurface attaches the drawing surface and sizes it to the stage.
// A nil surface detaches the current one.
func (s *Stage) SetSurface(surface Surface) {
	if surface == nil {
		surface = nopSurface{}
	}
	s.surface = surface
	s.resize()
}

// Logger returns the logger used for diagnostics.
func (s *Stage) Logger() *slog.Logger {
	return s.logger
}

// SetLogger replaces the diagnostics logger. nil restores slog.Default.
func (s *Stage) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l.With("lib", "rage")
}

// SetEntityStore sets the optional ECS bridge.
func (s *Stage) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings and per-refresh timings are logged.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetAssetFS sets the file system LoadImage reads from. The default is the
// working directory.
func (s *Stage) SetAssetFS(fsys fs.FS) {
	s.loader.fsys = fsys
}

// --- Clocks ---

// LogicRate returns the number of refreshes per logic tick.
func (s *Stage) LogicRate() int {
	return s.logicRate
}

// SetLogicRate sets refreshes per logic tick and restarts the countdown.
// Non-positive rates are rejected.
func (s *Stage) SetLogicRate(rate int) bool {
	if rate <= 0 {
		return false
	}
	s.logicRate = rate
	s.ticksRemaining = rate
	return true
}

// TicksRemaining returns the refreshes left before the next logic tick.
func (s *Stage) TicksRemaining() int {
	return s.ticksRemaining
}

// Refresh runs one display refresh: completed image loads and queued input
// are applied, the surface is cleared, the whole tree renders, and the logic
// clock advances.
func (s *Stage) Refresh() {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.loader.drain(s.logger)
	s.processInput()

	s.surface.Clear(s.Bounds())
	s.Render()

	if s.debug {
		stats.renderTime = time.Since(t0)
		t0 = time.Now()
	}

	ticked := s.Tick()

	if s.debug {
		stats.tickTime = time.Since(t0)
		stats.ticked = ticked
		stats.nodeCount = countNodes(&s.Container)
		s.debugLog(stats)
	}
}

// Tick advances the logic clock by one refresh. When the countdown reaches
// zero it is reset and EventAnimUpdate is dispatched on the stage; Tick then
// reports true.
func (s *Stage) Tick() bool {
	s.ticksRemaining--
	if s.ticksRemaining > 0 {
		return false
	}
	s.ticksRemaining = s.logicRate
	s.events.Emit(EventAnimUpdate)
	return true
}

// --- Frame loop ---

// Start runs Refresh once per frame requested from host until Stop is called.
// Calling Start on a running stage does nothing.
func (s *Stage) Start(host Host) {
	if s.running {
		return
	}
	s.running = true
	s.loopGen++
	gen := s.loopGen

	var frame func()
	frame = func() {
		// A stale frame from an earlier Start must not keep running.
		if !s.running || s.loopGen != gen {
			return
		}
		s.Refresh()
		if s.running && s.loopGen == gen {
			host.RequestFrame(frame)
		}
	}
	host.RequestFrame(frame)
}

// Stop ends the frame loop after the current refresh. The stage can be
// started again.
func (s *Stage) Stop() {
	s.running = false
}

// Running reports whether the frame loop is active.
func (s *Stage) Running() bool {
	return s.running
}
