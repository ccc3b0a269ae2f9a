package gesture

import (
	"math"

	"github.com/mkoreman/slideworld/core/carousel"
	game_log "github.com/mkoreman/slideworld/internal/log"
)

// Target is the drag surface a gesture can commit to. *carousel.Carousel
// satisfies it.
type Target interface {
	Axis() carousel.Axis
	StartDrag(p float64)
	Drag(p float64)
	EndDrag()
}

// axisThreshold is the displacement (in input units, on either axis) that
// commits a gesture to an axis.
const axisThreshold = 10.0

type state int

const (
	stateIdle state = iota
	stateCommitting
	stateDragging
)

type Config struct {
	Threshold float64 // 0 → axisThreshold
	// OnDragStart fires exactly once per gesture, when axis resolution
	// first yields a draggable target. other is the target on the
	// unreceiving axis, possibly nil; it never gets drag calls.
	OnDragStart func(active, other Target)
	// OnTap fires on release when the displacement never crossed the
	// threshold.
	OnTap func(x, y float64)
}

// Handler turns low-level pointer events into an axis-committed drag
// sequence. One gesture is active at a time; only one target is ever
// physically dragged per gesture.
type Handler struct {
	horizontal Target
	vertical   Target
	cfg        Config
	logger     *game_log.Logger

	state          state
	startX, startY float64
	active         Target
	other          Target
}

func New(horizontal, vertical Target, cfg Config, logger *game_log.Logger) *Handler {
	if cfg.Threshold <= 0 {
		cfg.Threshold = axisThreshold
	}
	return &Handler{
		horizontal: horizontal,
		vertical:   vertical,
		cfg:        cfg,
		logger:     logger,
	}
}

// Press starts a gesture with the axis still unresolved.
func (h *Handler) Press(x, y float64) {
	if h.state != stateIdle {
		// A stray press mid-gesture restarts tracking rather than stacking.
		h.logger.Warnf("[GESTURE] press during active gesture, restarting")
	}
	h.state = stateCommitting
	h.startX, h.startY = x, y
	h.active, h.other = nil, nil
}

// Move feeds a pointer position. Before the axis resolves it measures the
// displacement; afterwards it routes to the committed target.
func (h *Handler) Move(x, y float64) {
	switch h.state {
	case stateCommitting:
		dx := x - h.startX
		dy := y - h.startY
		if math.Abs(dx) <= h.cfg.Threshold && math.Abs(dy) <= h.cfg.Threshold {
			return
		}
		h.resolve(x, y, math.Abs(dx) >= math.Abs(dy))
	case stateDragging:
		h.active.Drag(h.coord(x, y))
	}
}

// resolve commits the gesture to an axis. When the winning axis has no
// target the gesture keeps committing, so a later move can still resolve
// onto a draggable axis.
func (h *Handler) resolve(x, y float64, horizontalWins bool) {
	active, other := h.horizontal, h.vertical
	if !horizontalWins {
		active, other = h.vertical, h.horizontal
	}
	if active == nil {
		return
	}
	h.active, h.other = active, other
	h.state = stateDragging
	h.logger.Debugf("[GESTURE] axis committed: %s", active.Axis())
	active.StartDrag(h.coord(x, y))
	if h.cfg.OnDragStart != nil {
		h.cfg.OnDragStart(active, other)
	}
}

// Release ends the gesture: a committed drag gets EndDrag, an unresolved
// one is a tap. The handler returns to idle either way.
func (h *Handler) Release() {
	switch h.state {
	case stateDragging:
		h.active.EndDrag()
	case stateCommitting:
		if h.cfg.OnTap != nil {
			h.cfg.OnTap(h.startX, h.startY)
		}
	}
	h.state = stateIdle
	h.active, h.other = nil, nil
}

// Dragging reports whether a target is currently receiving drags.
func (h *Handler) Dragging() bool { return h.state == stateDragging }

func (h *Handler) coord(x, y float64) float64 {
	if h.active != nil && h.active.Axis() == carousel.Vertical {
		return y
	}
	return x
}
