package navgraph

import (
	"github.com/mkoreman/slideworld/core/carousel"
	game_log "github.com/mkoreman/slideworld/internal/log"
	"github.com/mkoreman/slideworld/internal/utils"
)

// Ref points at one cell of the world: a carousel plus a logical index.
type Ref struct {
	Carousel string `json:"carousel"`
	Index    int    `json:"index"`
}

// Cell is one navigable position. Only the axis pair matching the owning
// carousel's orientation is populated intrinsically; the other pair is
// filled in when the cell hosts (or attaches to) a puzzle slot.
type Cell struct {
	Up    *Ref `json:"up,omitempty"`
	Down  *Ref `json:"down,omitempty"`
	Left  *Ref `json:"left,omitempty"`
	Right *Ref `json:"right,omitempty"`

	// Guest marks this cell as a host slot opening onto another carousel.
	Guest *Ref `json:"guest,omitempty"`
	// IsConnection marks this cell as a guest attachment point, so the
	// orchestrator orients its off-axis moves toward the host.
	IsConnection bool `json:"isConnection,omitempty"`
}

// CarouselInfo describes one carousel's index space.
type CarouselInfo struct {
	ID    string
	Axis  carousel.Axis
	Count int // sourceItemCount
}

// Slot declares an overlap between a host cell and a guest carousel.
type Slot struct {
	Host       string
	HostIndex  int
	Guest      string
	GuestIndex int
}

type cellKey struct {
	carousel string
	index    int
}

// Graph is the directional adjacency over every (carousel, index) cell.
type Graph struct {
	cells  map[cellKey]*Cell
	order  []cellKey // insertion order, for deterministic snapshots
	logger *game_log.Logger
}

// Build synthesizes the navigation graph from the declarative layout.
// Slots whose host or guest cannot be resolved are authoring gaps: they
// are logged and skipped, never an error.
func Build(carousels []CarouselInfo, slots []Slot, logger *game_log.Logger) *Graph {
	g := &Graph{cells: map[cellKey]*Cell{}, logger: logger}
	info := make(map[string]CarouselInfo, len(carousels))

	for _, ci := range carousels {
		info[ci.ID] = ci
		for i := 0; i < ci.Count; i++ {
			cell := &Cell{}
			prev := &Ref{Carousel: ci.ID, Index: utils.FloorMod(i-1, ci.Count)}
			next := &Ref{Carousel: ci.ID, Index: utils.FloorMod(i+1, ci.Count)}
			if ci.Axis == carousel.Horizontal {
				cell.Left, cell.Right = prev, next
			} else {
				cell.Up, cell.Down = prev, next
			}
			k := cellKey{carousel: ci.ID, index: i}
			g.cells[k] = cell
			g.order = append(g.order, k)
		}
	}

	for _, s := range slots {
		g.applySlot(info, s)
	}
	return g
}

func (g *Graph) applySlot(info map[string]CarouselInfo, s Slot) {
	hostInfo, hostOK := info[s.Host]
	guestInfo, guestOK := info[s.Guest]
	if !hostOK || !guestOK {
		g.logger.Warnf("[NAVGRAPH] slot %s[%d]->%s[%d] references unknown carousel, skipped",
			s.Host, s.HostIndex, s.Guest, s.GuestIndex)
		return
	}
	host := g.cells[cellKey{carousel: s.Host, index: s.HostIndex}]
	guest := g.cells[cellKey{carousel: s.Guest, index: s.GuestIndex}]
	if host == nil || guest == nil {
		g.logger.Warnf("[NAVGRAPH] slot %s[%d]->%s[%d] out of range, skipped",
			s.Host, s.HostIndex, s.Guest, s.GuestIndex)
		return
	}

	// Stepping off the host along its non-native axis lands next to the
	// guest's alignment index.
	gPrev := &Ref{Carousel: s.Guest, Index: utils.FloorMod(s.GuestIndex-1, guestInfo.Count)}
	gNext := &Ref{Carousel: s.Guest, Index: utils.FloorMod(s.GuestIndex+1, guestInfo.Count)}
	if hostInfo.Axis == carousel.Horizontal {
		host.Up, host.Down = gPrev, gNext
	} else {
		host.Left, host.Right = gPrev, gNext
	}
	host.Guest = &Ref{Carousel: s.Guest, Index: s.GuestIndex}

	// Both off-axis moves from the guest collapse onto the single overlap
	// point on the host.
	back := &Ref{Carousel: s.Host, Index: s.HostIndex}
	if guestInfo.Axis == carousel.Horizontal {
		guest.Up, guest.Down = back, back
	} else {
		guest.Left, guest.Right = back, back
	}
	guest.IsConnection = true

	g.logger.Debugf("[NAVGRAPH] slot: host %s[%d] <-> guest %s[%d]",
		s.Host, s.HostIndex, s.Guest, s.GuestIndex)
}

// Cell looks up one cell by carousel id and index. The returned value is a
// copy; mutating it does not affect the graph.
func (g *Graph) Cell(carouselID string, index int) (Cell, bool) {
	c, ok := g.cells[cellKey{carousel: carouselID, index: index}]
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// Record pairs a cell with its address, for snapshots.
type Record struct {
	Carousel string `json:"carousel"`
	Index    int    `json:"index"`
	Cell     Cell   `json:"cell"`
}

// Snapshot returns every cell in build order.
func (g *Graph) Snapshot() []Record {
	out := make([]Record, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, Record{Carousel: k.carousel, Index: k.index, Cell: *g.cells[k]})
	}
	return out
}
