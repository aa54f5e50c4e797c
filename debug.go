package rage

import (
	"log/slog"
	"time"
)

// debugStats holds per-refresh timing metrics.
// Only populated when Stage.debug is true.
type debugStats struct {
	renderTime time.Duration
	tickTime   time.Duration
	ticked     bool
	nodeCount  int
}

// debugLog writes timing stats at debug level.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("refresh",
		slog.Duration("render", stats.renderTime),
		slog.Duration("tick", stats.tickTime),
		slog.Bool("ticked", stats.ticked),
		slog.Int("nodes", stats.nodeCount),
	)
}

// debugMaxTreeDepth is the depth past which AddChild warns in debug mode.
const debugMaxTreeDepth = 32

func (s *Stage) debugCheckTreeDepth(n *Node) {
	depth := 1
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		s.logger.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugMaxChildCount is the child count past which AddChild warns in debug mode.
const debugMaxChildCount = 1000

func (s *Stage) debugCheckChildCount(c *Container) {
	if c.NumChildren() > debugMaxChildCount {
		s.logger.Warn("child count exceeds threshold",
			"node", c.Name, "children", c.NumChildren(), "threshold", debugMaxChildCount)
	}
}

// countNodes counts c and every descendant.
func countNodes(c *Container) int {
	count := 1
	for _, child := range c.children.items {
		if sub, ok := child.(interface{ container() *Container }); ok {
			count += countNodes(sub.container())
			continue
		}
		count++
	}
	return count
}
