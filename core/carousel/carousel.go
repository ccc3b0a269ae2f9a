package carousel

import (
	"errors"
	"math"
	"time"

	game_log "github.com/mkoreman/slideworld/internal/log"
	"github.com/mkoreman/slideworld/internal/utils"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Item is one authored slide. Extent is the item's size along the
// carousel axis; it only matters on the first item when Config.ItemExtent
// is left unset.
type Item struct {
	ID     string
	Extent float64
}

// Clock supplies the current time; tests inject a fake one.
type Clock func() time.Time

type Config struct {
	Axis             Axis
	ItemExtent       float64 // 0 → taken from the first item
	CloneBufferCount int     // 0 → defaultCloneBuffer
	ThrowMultiplier  float64 // 0 → defaultThrowMultiplier
	SnapBaseDuration time.Duration
	SnapMaxDuration  time.Duration
	DistanceFactor   float64 // px per second added on top of the base duration
	Clock            Clock
}

const (
	defaultCloneBuffer     = 2
	defaultThrowMultiplier = 0.7
	defaultSnapBase        = 300 * time.Millisecond
	defaultSnapMax         = 800 * time.Millisecond
	defaultDistanceFactor  = 1000.0
)

var (
	ErrNoItems    = errors.New("carousel: no items")
	ErrZeroExtent = errors.New("carousel: item extent is zero or indeterminate")
)

// SnapOptions tunes a single SnapTo call.
type SnapOptions struct {
	OnComplete func()
	Source     Source
}

type animation struct {
	from, to   float64
	start      time.Time
	duration   time.Duration
	index      int // wrapped logical index reported on completion
	source     Source
	onComplete func()
}

// Carousel is an infinitely wrapping 1-D strip of slides. All mutation is
// synchronous: drags mutate state inside gesture callbacks and animations
// advance only inside Step, so no locking is needed.
type Carousel struct {
	id     string
	cfg    Config
	extent float64
	strip  Strip
	ids    []string // logical index → slide id, authored order
	logger *game_log.Logger
	em     *emitter

	pos    float64 // committed offset
	render float64 // live rendered offset (differs from pos mid-animation)

	dragging bool
	lastPos  float64
	lastTime time.Time
	velocity float64 // px per millisecond, latest finite difference

	anim *animation
}

// New builds a clone-buffer carousel from the authored items.
func New(id string, items []Item, cfg Config, logger *game_log.Logger) (*Carousel, error) {
	c, err := newCarousel(id, items, cfg, logger)
	if err != nil {
		return nil, err
	}
	clones := cfg.CloneBufferCount
	if clones <= 0 {
		clones = defaultCloneBuffer
	}
	c.strip = newCloneStrip(c.ids, clones)
	c.reset()
	logger.Debugf("[CAROUSEL %s] init: %d items, %d clones, extent %.1f, axis %s",
		id, len(c.ids), clones, c.extent, c.cfg.Axis)
	return c, nil
}

// NewFilmstrip builds the continuous five-copy variant used for lead-in
// strips. It honors the same contract as New.
func NewFilmstrip(id string, items []Item, cfg Config, logger *game_log.Logger) (*Carousel, error) {
	c, err := newCarousel(id, items, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.strip = newFilmstrip(c.ids)
	c.reset()
	logger.Debugf("[CAROUSEL %s] init filmstrip: %d items, extent %.1f", id, len(c.ids), c.extent)
	return c, nil
}

func newCarousel(id string, items []Item, cfg Config, logger *game_log.Logger) (*Carousel, error) {
	if len(items) == 0 {
		logger.Errorf("[CAROUSEL %s] init failed: no items", id)
		return nil, ErrNoItems
	}
	extent := cfg.ItemExtent
	if extent == 0 {
		extent = items[0].Extent
	}
	if extent <= 0 {
		logger.Errorf("[CAROUSEL %s] init failed: extent %.2f", id, extent)
		return nil, ErrZeroExtent
	}
	if cfg.ThrowMultiplier == 0 {
		cfg.ThrowMultiplier = defaultThrowMultiplier
	}
	if cfg.SnapBaseDuration == 0 {
		cfg.SnapBaseDuration = defaultSnapBase
	}
	if cfg.SnapMaxDuration == 0 {
		cfg.SnapMaxDuration = defaultSnapMax
	}
	if cfg.DistanceFactor == 0 {
		cfg.DistanceFactor = defaultDistanceFactor
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return &Carousel{
		id:     id,
		cfg:    cfg,
		extent: extent,
		ids:    ids,
		logger: logger,
		em:     newEmitter(id, logger),
	}, nil
}

func (c *Carousel) reset() {
	c.pos = -c.extent * float64(c.strip.Lead())
	c.render = c.pos
	c.anim = nil
	c.velocity = 0
	c.dragging = false
}

/* ─────────────────────────── accessors ─────────────────────────── */

func (c *Carousel) ID() string       { return c.id }
func (c *Carousel) Axis() Axis       { return c.cfg.Axis }
func (c *Carousel) Extent() float64  { return c.extent }
func (c *Carousel) SourceCount() int { return c.strip.SourceCount() }

// Translate is the live rendered offset, valid mid-animation.
func (c *Carousel) Translate() float64 { return c.render }

// Physical exposes the full clone-extended slide sequence plus the number
// of leading clones, for renderers that draw the strip.
func (c *Carousel) Physical() (ids []string, lead int) {
	return c.strip.Physical(), c.strip.Lead()
}

func (c *Carousel) indexAt(offset float64) int {
	return int(math.Round(-offset/c.extent)) - c.strip.Lead()
}

// CurrentIndex derives the logical index from the committed position.
func (c *Carousel) CurrentIndex() int {
	return utils.FloorMod(c.indexAt(c.pos), c.strip.SourceCount())
}

// VisualIndex derives the logical index from the live rendered offset,
// valid even mid-animation.
func (c *Carousel) VisualIndex() int {
	return utils.FloorMod(c.indexAt(c.render), c.strip.SourceCount())
}

func (c *Carousel) CurrentSlideID() string { return c.ids[c.CurrentIndex()] }
func (c *Carousel) VisualSlideID() string  { return c.ids[c.VisualIndex()] }

func (c *Carousel) On(event EventType, fn Handler) Subscription { return c.em.On(event, fn) }
func (c *Carousel) Off(sub Subscription)                        { c.em.Off(sub) }

/* ──────────────────────────── dragging ─────────────────────────── */

// StartDrag begins a gesture at pointer coordinate p along the axis. Any
// in-flight animation is superseded; its completion never fires.
func (c *Carousel) StartDrag(p float64) {
	c.pos = c.render // capture the live offset as the committed position
	c.anim = nil
	c.velocity = 0
	c.dragging = true
	c.lastPos = p
	c.lastTime = c.cfg.Clock()
}

// Drag moves the strip by the pointer delta and updates the instantaneous
// velocity as a plain finite difference over the latest move.
func (c *Carousel) Drag(p float64) {
	if !c.dragging {
		return
	}
	now := c.cfg.Clock()
	d := p - c.lastPos
	c.pos += d
	c.render = c.pos
	if ms := float64(now.Sub(c.lastTime)) / float64(time.Millisecond); ms > 0 {
		c.velocity = d / ms
	}
	c.lastPos = p
	c.lastTime = now
	c.em.Emit(EventDrag, Payload{
		Index:     c.VisualIndex(),
		SlideID:   c.VisualSlideID(),
		Velocity:  c.velocity,
		Translate: c.render,
		Source:    SourceDrag,
	})
}

// EndDrag projects a throw target from the release velocity, rounds it to
// the item grid and animates there.
func (c *Carousel) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	target := c.pos + c.velocity*c.extent*c.cfg.ThrowMultiplier
	rounded := math.Round(target/c.extent) * c.extent
	c.em.Emit(EventDragEnd, Payload{
		Index:     c.VisualIndex(),
		SlideID:   c.VisualSlideID(),
		Velocity:  c.velocity,
		Translate: c.render,
		Source:    SourceDrag,
	})
	c.snapRaw(c.indexAt(rounded), false, SnapOptions{Source: SourceDrag})
}

/* ──────────────────────────── snapping ─────────────────────────── */

// SnapTo moves to a logical index. Immediate snaps complete synchronously:
// onComplete, then snapComplete, then the silent wrap check.
func (c *Carousel) SnapTo(index int, immediate bool, opts SnapOptions) {
	c.snapRaw(index, immediate, opts)
}

// Next advances one slide with an animated snap.
func (c *Carousel) Next(source Source) {
	c.snapRaw(c.indexAt(c.pos)+1, false, SnapOptions{Source: source})
}

// Prev goes back one slide with an animated snap.
func (c *Carousel) Prev(source Source) {
	c.snapRaw(c.indexAt(c.pos)-1, false, SnapOptions{Source: source})
}

// snapRaw accepts an unwrapped index: callers may step past either end of
// the logical range and the post-settle wrap check re-centers silently.
func (c *Carousel) snapRaw(raw int, immediate bool, opts SnapOptions) {
	if opts.Source == "" {
		opts.Source = SourceProgrammatic
	}
	target := -float64(raw+c.strip.Lead()) * c.extent
	index := utils.FloorMod(raw, c.strip.SourceCount())
	c.pos = target
	if immediate {
		c.anim = nil
		c.render = target
		c.complete(index, opts.Source, opts.OnComplete)
		return
	}
	distance := math.Abs(target - c.render)
	seconds := float64(c.cfg.SnapBaseDuration)/float64(time.Second) + distance/c.cfg.DistanceFactor
	duration := time.Duration(utils.Clamp(
		seconds*float64(time.Second),
		float64(c.cfg.SnapBaseDuration),
		float64(c.cfg.SnapMaxDuration)))
	c.anim = &animation{
		from:       c.render,
		to:         target,
		start:      c.cfg.Clock(),
		duration:   duration,
		index:      index,
		source:     opts.Source,
		onComplete: opts.OnComplete,
	}
}

// Step advances the in-flight animation, if any. The orchestrator calls it
// once per frame. Completion deregisters the animation before invoking any
// callback so a re-entrant snap can never double-fire it.
func (c *Carousel) Step() {
	a := c.anim
	if a == nil {
		return
	}
	elapsed := c.cfg.Clock().Sub(a.start)
	if elapsed >= a.duration {
		c.anim = nil
		c.render = a.to
		c.pos = a.to
		c.complete(a.index, a.source, a.onComplete)
		return
	}
	t := float64(elapsed) / float64(a.duration)
	c.render = a.from + (a.to-a.from)*easeOutCubic(t)
}

// Animating reports whether a snap animation is in flight.
func (c *Carousel) Animating() bool { return c.anim != nil }

func (c *Carousel) complete(index int, source Source, onComplete func()) {
	if onComplete != nil {
		onComplete()
	}
	c.em.Emit(EventSnapComplete, Payload{
		Index:     index,
		SlideID:   c.ids[index],
		Translate: c.render,
		Source:    source,
	})
	c.wrapCheck()
}

// wrapCheck runs strictly after the user-visible completion so consumers
// observe the logically-correct pre-wrap offset.
func (c *Carousel) wrapCheck() {
	wrapped, ok := c.strip.Wrap(c.pos, c.extent)
	if !ok {
		return
	}
	c.logger.Debugf("[CAROUSEL %s] wrap: %.1f -> %.1f", c.id, c.pos, wrapped)
	c.pos = wrapped
	c.render = wrapped
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
