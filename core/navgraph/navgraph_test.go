package navgraph

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoreman/slideworld/core/carousel"
	game_log "github.com/mkoreman/slideworld/internal/log"
)

func testLayout() ([]CarouselInfo, []Slot) {
	carousels := []CarouselInfo{
		{ID: "S1", Axis: carousel.Horizontal, Count: 4},
		{ID: "S2", Axis: carousel.Vertical, Count: 3},
	}
	slots := []Slot{
		{Host: "S1", HostIndex: 2, Guest: "S2", GuestIndex: 0},
	}
	return carousels, slots
}

func TestIntrinsicNeighborsAreCircular(t *testing.T) {
	carousels, _ := testLayout()
	g := Build(carousels, nil, game_log.Nop())

	first, ok := g.Cell("S1", 0)
	require.True(t, ok)
	require.NotNil(t, first.Left)
	assert.Equal(t, Ref{Carousel: "S1", Index: 3}, *first.Left, "index 0 wraps back to the last index")
	assert.Equal(t, Ref{Carousel: "S1", Index: 1}, *first.Right)
	assert.Nil(t, first.Up, "horizontal carousel has no intrinsic vertical edges")
	assert.Nil(t, first.Down)

	top, ok := g.Cell("S2", 0)
	require.True(t, ok)
	assert.Equal(t, Ref{Carousel: "S2", Index: 2}, *top.Up)
	assert.Equal(t, Ref{Carousel: "S2", Index: 1}, *top.Down)
	assert.Nil(t, top.Left)
	assert.Nil(t, top.Right)
}

func TestSlotLinksHostAndGuest(t *testing.T) {
	carousels, slots := testLayout()
	g := Build(carousels, slots, game_log.Nop())

	host, ok := g.Cell("S1", 2)
	require.True(t, ok)
	require.NotNil(t, host.Guest)
	assert.Equal(t, Ref{Carousel: "S2", Index: 0}, *host.Guest)
	assert.Equal(t, Ref{Carousel: "S2", Index: 2}, *host.Up, "up steps to the guest's previous index")
	assert.Equal(t, Ref{Carousel: "S2", Index: 1}, *host.Down, "down steps to the guest's next index")
	// Native axis is untouched by the slot overlay.
	assert.Equal(t, Ref{Carousel: "S1", Index: 1}, *host.Left)
	assert.Equal(t, Ref{Carousel: "S1", Index: 3}, *host.Right)

	guest, ok := g.Cell("S2", 0)
	require.True(t, ok)
	assert.True(t, guest.IsConnection)
	back := Ref{Carousel: "S1", Index: 2}
	assert.Equal(t, back, *guest.Left, "both off-axis moves collapse onto the host")
	assert.Equal(t, back, *guest.Right)
}

func TestUnresolvedSlotIsSkipped(t *testing.T) {
	carousels, _ := testLayout()
	slots := []Slot{
		{Host: "missing", HostIndex: 0, Guest: "S2", GuestIndex: 0},
		{Host: "S1", HostIndex: 99, Guest: "S2", GuestIndex: 0},
		{Host: "S1", HostIndex: 1, Guest: "ghost", GuestIndex: 0},
	}
	g := Build(carousels, slots, game_log.Nop())

	cell, ok := g.Cell("S1", 1)
	require.True(t, ok)
	assert.Nil(t, cell.Guest, "slot with unknown guest must not attach")
	assert.Nil(t, cell.Up)

	_, ok = g.Cell("missing", 0)
	assert.False(t, ok)
}

func TestCellReturnsCopy(t *testing.T) {
	carousels, slots := testLayout()
	g := Build(carousels, slots, game_log.Nop())

	cell, ok := g.Cell("S1", 2)
	require.True(t, ok)
	cell.Guest = nil
	again, _ := g.Cell("S1", 2)
	assert.NotNil(t, again.Guest)
}

func TestSnapshotGolden(t *testing.T) {
	carousels, slots := testLayout()
	g := Build(carousels, slots, game_log.Nop())

	gold := goldie.New(t)
	gold.AssertJson(t, "navgraph", g.Snapshot())
}
