package game

import (
	"github.com/google/uuid"

	"github.com/mkoreman/slideworld/core/carousel"
	"github.com/mkoreman/slideworld/core/navgraph"
	"github.com/mkoreman/slideworld/core/puzzle"
	game_log "github.com/mkoreman/slideworld/internal/log"
)

// Session is the owned "active game" state: one carousel engine per
// authored carousel, the navigation graph over them, and one pairing
// record per puzzle with a cached solved flag. Replacing the world goes
// through Reload, never through ambient mutation.
type Session struct {
	id     string
	logger *game_log.Logger
	clock  carousel.Clock

	doc       *Document
	order     []string
	carousels map[string]*carousel.Carousel
	graph     *navgraph.Graph
	puzzles   []puzzle.Puzzle
	pairings  map[string]*puzzle.Pairing
	solved    map[string]bool
}

// NewSession builds the world from a document. Carousels that fail their
// own initialization (no slides, indeterminate extent) are logged and
// skipped; the rest of the world still loads.
func NewSession(doc *Document, clock carousel.Clock, logger *game_log.Logger) *Session {
	s := &Session{
		id:     uuid.NewString(),
		logger: logger,
		clock:  clock,
	}
	s.build(doc)
	logger.Infof("[SESSION %s] loaded: %d carousels, %d puzzles", s.id, len(s.order), len(s.puzzles))
	return s
}

func (s *Session) build(doc *Document) {
	s.doc = doc
	s.order = nil
	s.carousels = map[string]*carousel.Carousel{}
	s.puzzles = nil
	s.pairings = map[string]*puzzle.Pairing{}
	s.solved = map[string]bool{}

	var infos []navgraph.CarouselInfo
	for _, def := range doc.Carousels {
		c, err := s.buildCarousel(def)
		if err != nil {
			s.logger.Errorf("[SESSION %s] carousel %q unusable: %v", s.id, def.ID, err)
			continue
		}
		s.order = append(s.order, def.ID)
		s.carousels[def.ID] = c
		infos = append(infos, navgraph.CarouselInfo{ID: def.ID, Axis: c.Axis(), Count: c.SourceCount()})
	}

	slots := make([]navgraph.Slot, 0, len(doc.Slots))
	for _, def := range doc.Slots {
		slots = append(slots, navgraph.Slot{
			Host:       def.Host,
			HostIndex:  def.HostIndex,
			Guest:      def.Guest,
			GuestIndex: def.GuestIndex,
		})
	}
	s.graph = navgraph.Build(infos, slots, s.logger)

	for _, def := range doc.Puzzles {
		puz := puzzle.Puzzle{
			ID:         def.ID,
			Topology:   puzzle.Topology(def.Topology),
			Evaluation: puzzle.Evaluation(def.Evaluation),
		}
		for _, pair := range def.Pairs {
			puz.Solution = append(puz.Solution, puzzle.Pair{A: pair[0], B: pair[1]})
		}
		s.puzzles = append(s.puzzles, puz)
		s.pairings[def.ID] = puzzle.NewPairing()
		s.solved[def.ID] = puzzle.Solved(puz, s.pairings[def.ID])
	}
}

func (s *Session) buildCarousel(def CarouselDef) (*carousel.Carousel, error) {
	axis := carousel.Horizontal
	if def.Axis == "vertical" {
		axis = carousel.Vertical
	}
	items := make([]carousel.Item, len(def.Slides))
	for i, id := range def.Slides {
		items[i] = carousel.Item{ID: id}
	}
	cfg := carousel.Config{
		Axis:             axis,
		ItemExtent:       def.ItemExtent,
		CloneBufferCount: def.CloneCount,
		Clock:            s.clock,
	}
	if def.Filmstrip {
		return carousel.NewFilmstrip(def.ID, items, cfg, s.logger)
	}
	return carousel.New(def.ID, items, cfg, s.logger)
}

func (s *Session) ID() string               { return s.id }
func (s *Session) Graph() *navgraph.Graph   { return s.graph }
func (s *Session) Puzzles() []puzzle.Puzzle { return s.puzzles }

// Carousel looks up one engine by id.
func (s *Session) Carousel(id string) (*carousel.Carousel, bool) {
	c, ok := s.carousels[id]
	return c, ok
}

// Carousels returns the engines in document order.
func (s *Session) Carousels() []*carousel.Carousel {
	out := make([]*carousel.Carousel, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.carousels[id])
	}
	return out
}

// Pairing exposes the live pairing record of a puzzle.
func (s *Session) Pairing(puzzleID string) (*puzzle.Pairing, bool) {
	p, ok := s.pairings[puzzleID]
	return p, ok
}

// PuzzleSolved reads the cached solved flag.
func (s *Session) PuzzleSolved(puzzleID string) bool { return s.solved[puzzleID] }

// AllSolved reports whether every puzzle is currently solved.
func (s *Session) AllSolved() bool {
	if len(s.puzzles) == 0 {
		return false
	}
	for _, puz := range s.puzzles {
		if !s.solved[puz.ID] {
			return false
		}
	}
	return true
}

// TogglePair mutates a puzzle's pairing and recomputes its solved flag.
// Unknown puzzle ids are skipped.
func (s *Session) TogglePair(puzzleID, a, b string) (solved bool) {
	pairing, ok := s.pairings[puzzleID]
	if !ok {
		s.logger.Warnf("[SESSION %s] toggle on unknown puzzle %q skipped", s.id, puzzleID)
		return false
	}
	added := pairing.Toggle(a, b)
	for _, puz := range s.puzzles {
		if puz.ID == puzzleID {
			s.solved[puzzleID] = puzzle.Solved(puz, pairing)
			break
		}
	}
	s.logger.Debugf("[SESSION %s] toggle %s: %s<->%s added=%v solved=%v",
		s.id, puzzleID, a, b, added, s.solved[puzzleID])
	return s.solved[puzzleID]
}

// Step advances every carousel's in-flight animation.
func (s *Session) Step() {
	for _, id := range s.order {
		s.carousels[id].Step()
	}
}

// Reset clears every pairing and snaps every carousel back to its first
// slide, without replacing the world.
func (s *Session) Reset() {
	for _, pairing := range s.pairings {
		pairing.Reset()
	}
	for _, puz := range s.puzzles {
		s.solved[puz.ID] = puzzle.Solved(puz, s.pairings[puz.ID])
	}
	for _, id := range s.order {
		s.carousels[id].SnapTo(0, true, carousel.SnapOptions{Source: carousel.SourceProgrammatic})
	}
	s.logger.Infof("[SESSION %s] reset", s.id)
}

// Reload replaces the world wholesale with a new document. The session id
// survives so log trails stay correlated.
func (s *Session) Reload(doc *Document) {
	s.build(doc)
	s.logger.Infof("[SESSION %s] reloaded: %d carousels, %d puzzles", s.id, len(s.order), len(s.puzzles))
}
