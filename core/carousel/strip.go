package carousel

import (
	"math"

	"github.com/mkoreman/slideworld/internal/utils"
)

// Strip is the physical layout of slides around the logical item range.
// Two strategies exist: cloneStrip duplicates a buffer of items on each
// side of the working set, filmstrip lays out five full copies of the
// source block. Both give the engine the same three facts: how many
// physical slides precede logical index 0 (Lead), how big the working
// set is, and when/where an offset must be re-centered (Wrap).
type Strip interface {
	// SourceCount is the number of authored items.
	SourceCount() int
	// WorkingCount is the size of the deduplicated set clones are taken
	// from; equals SourceCount unless the clone buffer forced duplication.
	WorkingCount() int
	// Lead is the number of physical slides before logical index 0.
	Lead() int
	// Physical returns every slide id in render order, clones included.
	Physical() []string
	// Wrap re-centers an offset that escaped the safe zone. The second
	// return is false when the offset was already safe.
	Wrap(offset, extent float64) (float64, bool)
}

/* ───────────────────── clone-buffer strategy ───────────────────── */

type cloneStrip struct {
	source  []string
	working []string
	clones  int
}

// newCloneStrip builds the buffered layout. When the requested buffer is
// larger than the source set, the source is replicated whole so no physical
// clone is reused for two logical positions.
func newCloneStrip(ids []string, cloneCount int) *cloneStrip {
	dup := 1
	if cloneCount > len(ids) {
		dup = (cloneCount + len(ids) - 1) / len(ids)
	}
	working := make([]string, 0, len(ids)*dup)
	for i := 0; i < dup; i++ {
		working = append(working, ids...)
	}
	return &cloneStrip{source: ids, working: working, clones: cloneCount}
}

func (s *cloneStrip) SourceCount() int  { return len(s.source) }
func (s *cloneStrip) WorkingCount() int { return len(s.working) }
func (s *cloneStrip) Lead() int         { return s.clones }

func (s *cloneStrip) Physical() []string {
	n := len(s.working)
	out := make([]string, 0, n+2*s.clones)
	for i := n - s.clones; i < n; i++ {
		out = append(out, s.working[utils.FloorMod(i, n)])
	}
	out = append(out, s.working...)
	for i := 0; i < s.clones; i++ {
		out = append(out, s.working[i%n])
	}
	return out
}

func (s *cloneStrip) Wrap(offset, extent float64) (float64, bool) {
	raw := int(math.Round(-offset/extent)) - s.clones
	safe := utils.FloorMod(raw, len(s.source))
	if raw == safe {
		return offset, false
	}
	return -float64(safe+s.clones) * extent, true
}

/* ─────────────────────── filmstrip strategy ─────────────────────── */

// filmstrip renders five concatenated copies of the source block and keeps
// the offset inside the middle copy, reducing modulo one block length.
type filmstrip struct {
	source []string
}

const filmstripCopies = 5

func newFilmstrip(ids []string) *filmstrip {
	return &filmstrip{source: ids}
}

func (s *filmstrip) SourceCount() int  { return len(s.source) }
func (s *filmstrip) WorkingCount() int { return len(s.source) }
func (s *filmstrip) Lead() int         { return 2 * len(s.source) }

func (s *filmstrip) Physical() []string {
	out := make([]string, 0, filmstripCopies*len(s.source))
	for i := 0; i < filmstripCopies; i++ {
		out = append(out, s.source...)
	}
	return out
}

func (s *filmstrip) Wrap(offset, extent float64) (float64, bool) {
	block := float64(len(s.source)) * extent
	// x is the distance travelled into the middle copy; safe while in [0, block).
	x := -offset - 2*block
	if x >= 0 && x < block {
		return offset, false
	}
	return -(2*block + utils.FloorModF(x, block)), true
}
