package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mkoreman/slideworld/core/carousel"
	"github.com/mkoreman/slideworld/core/game"
	"github.com/mkoreman/slideworld/core/navgraph"
	"github.com/mkoreman/slideworld/internal/gesture"
	game_log "github.com/mkoreman/slideworld/internal/log"
)

const (
	slideGap    = 4   // px between slide boxes
	stripPitch  = 160 // world-space distance between strips
	statusLines = 24  // px reserved at the top for puzzle status
)

var (
	colorBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	colorSlide      = color.RGBA{R: 0x3a, G: 0x3a, B: 0x55, A: 0xff}
	colorClone      = color.RGBA{R: 0x26, G: 0x26, B: 0x38, A: 0xff}
	colorFocus      = color.RGBA{R: 0xe0, G: 0xa0, B: 0x20, A: 0xff}
	colorSlot       = color.RGBA{R: 0x30, G: 0xc0, B: 0x70, A: 0xff}
)

type stripOrigin struct {
	x, y float64
}

// Game is the demo orchestrator: it feeds pointer events into the gesture
// handler, drives the carousel animations, walks the navigation graph on
// arrow keys and toggles pairings on taps over host slots.
type Game struct {
	session *game.Session
	logger  *game_log.Logger
	cam     *Camera

	focus   string // focused carousel id
	origins map[string]stripOrigin

	handler   *gesture.Handler
	mouseDown bool
	keysPrev  map[ebiten.Key]bool

	winW, winH int
}

func New(session *game.Session, logger *game_log.Logger) *Game {
	g := &Game{
		session:  session,
		logger:   logger,
		cam:      NewCamera(),
		origins:  map[string]stripOrigin{},
		keysPrev: map[ebiten.Key]bool{},
		winW:     960,
		winH:     640,
	}
	g.layoutStrips()
	return g
}

// layoutStrips assigns fixed world positions: horizontal strips stack into
// rows on the left, vertical strips line up as columns on the right.
func (g *Game) layoutStrips() {
	row, col := 0, 0
	for _, c := range g.session.Carousels() {
		if g.focus == "" {
			g.focus = c.ID()
		}
		if c.Axis() == carousel.Horizontal {
			g.origins[c.ID()] = stripOrigin{x: 320, y: float64(statusLines + 60 + row*stripPitch)}
			row++
		} else {
			g.origins[c.ID()] = stripOrigin{x: float64(80 + col*stripPitch), y: float64(statusLines + 60)}
			col++
		}
	}
}

/* ─────────────────────────── update loop ────────────────────────── */

func (g *Game) Update() error {
	g.cam.HandleWheel()
	g.handleMouse()
	g.handleKeys()
	g.session.Step()
	return nil
}

func (g *Game) handleMouse() {
	x, y := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !g.mouseDown:
		g.handler = g.newGestureHandler()
		g.handler.Press(float64(x), float64(y))
	case pressed && g.mouseDown:
		if g.handler != nil {
			g.handler.Move(float64(x), float64(y))
		}
	case !pressed && g.mouseDown:
		if g.handler != nil {
			g.handler.Release()
			g.handler = nil
		}
	}
	g.mouseDown = pressed
}

// newGestureHandler wires the handler to the carousels reachable from the
// current cell: the focused carousel on its own axis and, when the cell
// sits on a puzzle slot, the linked carousel on the other axis.
func (g *Game) newGestureHandler() *gesture.Handler {
	var hz, vt gesture.Target
	focused, ok := g.session.Carousel(g.focus)
	if !ok {
		return gesture.New(nil, nil, gesture.Config{OnTap: g.handleTap}, g.logger)
	}
	assign := func(c *carousel.Carousel) {
		if c.Axis() == carousel.Horizontal {
			hz = c
		} else {
			vt = c
		}
	}
	assign(focused)
	if partner := g.partnerOf(focused); partner != nil && partner.Axis() != focused.Axis() {
		assign(partner)
	}
	cfg := gesture.Config{
		OnTap: g.handleTap,
		OnDragStart: func(active, other gesture.Target) {
			if c, ok := active.(*carousel.Carousel); ok {
				g.focus = c.ID()
			}
		},
	}
	return gesture.New(hz, vt, cfg, g.logger)
}

// partnerOf resolves the carousel on the other side of the current cell's
// slot, if any: the guest for a host cell, the host for a connection cell.
func (g *Game) partnerOf(c *carousel.Carousel) *carousel.Carousel {
	cell, ok := g.session.Graph().Cell(c.ID(), c.CurrentIndex())
	if !ok {
		return nil
	}
	var ref *navgraph.Ref
	switch {
	case cell.Guest != nil:
		ref = cell.Guest
	case cell.IsConnection && c.Axis() == carousel.Horizontal:
		ref = cell.Up
	case cell.IsConnection:
		ref = cell.Left
	}
	if ref == nil {
		return nil
	}
	partner, ok := g.session.Carousel(ref.Carousel)
	if !ok {
		return nil
	}
	return partner
}

// handleTap toggles a pairing when the current cell hosts a puzzle slot:
// the host's visible slide against the guest's currently aligned slide.
func (g *Game) handleTap(x, y float64) {
	focused, ok := g.session.Carousel(g.focus)
	if !ok {
		return
	}
	cell, ok := g.session.Graph().Cell(g.focus, focused.CurrentIndex())
	if !ok || cell.Guest == nil {
		return
	}
	guest, ok := g.session.Carousel(cell.Guest.Carousel)
	if !ok {
		return
	}
	hostSlide := focused.CurrentSlideID()
	guestSlide := guest.CurrentSlideID()
	puzzleID, ok := g.puzzleFor(hostSlide, guestSlide)
	if !ok {
		g.logger.Debugf("[UI] tap on slot with no puzzle for %s/%s", hostSlide, guestSlide)
		return
	}
	g.session.TogglePair(puzzleID, hostSlide, guestSlide)
}

// puzzleFor picks the puzzle whose solution mentions either slide.
func (g *Game) puzzleFor(a, b string) (string, bool) {
	for _, puz := range g.session.Puzzles() {
		for _, pair := range puz.Solution {
			if pair.A == a || pair.B == a || pair.A == b || pair.B == b {
				return puz.ID, true
			}
		}
	}
	return "", false
}

func (g *Game) handleKeys() {
	g.keyEdge(ebiten.KeyArrowLeft, func() { g.navigate(func(c navgraph.Cell) *navgraph.Ref { return c.Left }) })
	g.keyEdge(ebiten.KeyArrowRight, func() { g.navigate(func(c navgraph.Cell) *navgraph.Ref { return c.Right }) })
	g.keyEdge(ebiten.KeyArrowUp, func() { g.navigate(func(c navgraph.Cell) *navgraph.Ref { return c.Up }) })
	g.keyEdge(ebiten.KeyArrowDown, func() { g.navigate(func(c navgraph.Cell) *navgraph.Ref { return c.Down }) })
	g.keyEdge(ebiten.KeyTab, g.cycleFocus)
	g.keyEdge(ebiten.KeyR, g.session.Reset)
}

// keyEdge invokes fn on the press edge of a key.
func (g *Game) keyEdge(k ebiten.Key, fn func()) {
	down := isKeyPressed(k)
	if down && !g.keysPrev[k] {
		fn()
	}
	g.keysPrev[k] = down
}

// navigate follows one directional edge out of the current cell. Moves
// within the focused carousel snap it; jump edges shift focus to the
// linked carousel and snap it to the landing index.
func (g *Game) navigate(pick func(navgraph.Cell) *navgraph.Ref) {
	focused, ok := g.session.Carousel(g.focus)
	if !ok {
		return
	}
	cell, ok := g.session.Graph().Cell(g.focus, focused.CurrentIndex())
	if !ok {
		return
	}
	ref := pick(cell)
	if ref == nil {
		return
	}
	target, ok := g.session.Carousel(ref.Carousel)
	if !ok {
		g.logger.Warnf("[UI] navigation edge to unknown carousel %q skipped", ref.Carousel)
		return
	}
	g.focus = target.ID()
	target.SnapTo(ref.Index, false, carousel.SnapOptions{Source: carousel.SourceNavigation})
}

func (g *Game) cycleFocus() {
	carousels := g.session.Carousels()
	for i, c := range carousels {
		if c.ID() == g.focus {
			g.focus = carousels[(i+1)%len(carousels)].ID()
			return
		}
	}
	if len(carousels) > 0 {
		g.focus = carousels[0].ID()
	}
}

/* ────────────────────────────── draw ────────────────────────────── */

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	for _, c := range g.session.Carousels() {
		g.drawStrip(screen, c)
	}
	g.drawStatus(screen)
}

func (g *Game) drawStrip(screen *ebiten.Image, c *carousel.Carousel) {
	origin := g.origins[c.ID()]
	ids, lead := c.Physical()
	extent := c.Extent()
	box := extent - slideGap

	for k, id := range ids {
		offset := c.Translate() + float64(k)*extent
		x, y := origin.x+offset, origin.y
		if c.Axis() == carousel.Vertical {
			x, y = origin.x, origin.y+offset
		}
		sx, sy := g.cam.ScreenPos(x, y)
		fill := colorSlide
		if k < lead || k >= len(ids)-lead {
			fill = colorClone
		}
		vector.DrawFilledRect(screen, float32(sx), float32(sy),
			float32(box*g.cam.Scale), float32(box*g.cam.Scale), fill, false)
		ebitenutil.DebugPrintAt(screen, id, int(sx)+4, int(sy)+4)
	}

	// Frame the cell at the strip origin; that's where the current slide
	// settles.
	frameX, frameY := g.cam.ScreenPos(origin.x, origin.y)
	frame := colorSlot
	if c.ID() == g.focus {
		frame = colorFocus
	}
	vector.StrokeRect(screen, float32(frameX)-2, float32(frameY)-2,
		float32(box*g.cam.Scale)+4, float32(box*g.cam.Scale)+4, 2, frame, false)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("focus: %s", g.focus)
	for _, puz := range g.session.Puzzles() {
		mark := " "
		if g.session.PuzzleSolved(puz.ID) {
			mark = "*"
		}
		status += fmt.Sprintf("  [%s] %s", mark, puz.ID)
	}
	if g.session.AllSolved() {
		status += "  all solved!"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.winW, g.winH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
