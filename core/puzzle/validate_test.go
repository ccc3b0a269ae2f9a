package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pairingOf(pairs ...Pair) *Pairing {
	p := NewPairing()
	for _, pair := range pairs {
		p.Toggle(pair.A, pair.B)
	}
	return p
}

func TestCountMismatchFailsFast(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologySet,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"c", "d"}},
	}
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"})), "partial attempt")
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"c", "d"}, Pair{"e", "f"})), "overcomplete attempt")
	assert.False(t, Solved(puz, nil))
}

func TestOrderedEvaluation(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologyChain,
		Evaluation: EvaluationOrdered,
		Solution:   []Pair{{"a", "b"}, {"b", "c"}},
	}
	assert.True(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"b", "c"})))
	assert.False(t, Solved(puz, pairingOf(Pair{"b", "c"}, Pair{"a", "b"})), "wrong insertion order")
	assert.False(t, Solved(puz, pairingOf(Pair{"b", "a"}, Pair{"b", "c"})), "reversed direction")
}

func TestSetUnordered(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologySet,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"c", "d"}},
	}
	assert.True(t, Solved(puz, pairingOf(Pair{"d", "c"}, Pair{"b", "a"})), "any order, any direction")
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"a", "d"})), "pair outside the solution")
}

func TestChainUnordered(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologyChain,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"b", "c"}, {"c", "d"}},
	}
	assert.True(t, Solved(puz, pairingOf(Pair{"b", "a"}, Pair{"c", "b"}, Pair{"d", "c"})),
		"reversed insertion, same unordered edges")
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"a", "c"}, Pair{"a", "d"})),
		"branch at a is not a chain")
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"c", "d"}, Pair{"e", "f"})),
		"disconnected components")
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"b", "c"}, Pair{"c", "a"})),
		"cycle is not a chain")
}

func TestChainRejectsMalformedPairing(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologyChain,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"b", "c"}},
	}
	// A self-loop cannot come out of Toggle, but authored or imported data
	// may carry one; build the pairing by hand.
	malformed := NewPairing()
	malformed.keys = []string{"a", "b"}
	malformed.to = map[string]string{"a": "a", "b": "c"}
	assert.False(t, Solved(puz, malformed))
}

func TestRingUnordered(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologyRing,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"b", "c"}, {"c", "a"}},
	}
	assert.True(t, Solved(puz, pairingOf(Pair{"c", "a"}, Pair{"a", "b"}, Pair{"b", "c"})))
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"b", "c"})), "missing edge")
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"b", "c"}, Pair{"b", "d"})),
		"open shape with an extra node instead of the closing edge")
}

func TestRingRequiresThreePairs(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologyRing,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"b", "a"}},
	}
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"b", "a"})))
}

func TestRingRejectsDisjointCycles(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologyRing,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"d", "e"}, {"e", "f"}, {"f", "d"}},
	}
	assert.False(t, Solved(puz, pairingOf(
		Pair{"a", "b"}, Pair{"b", "c"}, Pair{"c", "a"},
		Pair{"d", "e"}, Pair{"e", "f"}, Pair{"f", "d"})))
}

func TestStarUnordered(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologyStar,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"h", "p"}, {"h", "q"}, {"r", "h"}},
	}
	assert.True(t, Solved(puz, pairingOf(Pair{"p", "h"}, Pair{"q", "h"}, Pair{"h", "r"})),
		"hub may appear on either side")
	assert.False(t, Solved(puz, pairingOf(Pair{"p", "h"}, Pair{"q", "h"}, Pair{"p", "q"})),
		"spoke-to-spoke edge")
	assert.False(t, Solved(puz, pairingOf(Pair{"p", "h"}, Pair{"q", "h"}, Pair{"h", "z"})),
		"undeclared spoke")
}

func TestStarWithoutHubNeverSolves(t *testing.T) {
	// No id appears in every solution pair: a malformed star definition.
	puz := Puzzle{
		Topology:   TopologyStar,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"c", "d"}},
	}
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"c", "d"})))
}

func TestUnknownTopologyFailsClosed(t *testing.T) {
	puz := Puzzle{
		Topology:   Topology("spiral"),
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}},
	}
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"})))
}

// Authored data sometimes declares "chain" with set-like solution pairs;
// the validator must reject such pairings without panicking.
func TestChainWithSetLikeSolutionData(t *testing.T) {
	puz := Puzzle{
		Topology:   TopologyChain,
		Evaluation: EvaluationUnordered,
		Solution:   []Pair{{"a", "b"}, {"c", "d"}},
	}
	assert.False(t, Solved(puz, pairingOf(Pair{"a", "b"}, Pair{"c", "d"})))
}
