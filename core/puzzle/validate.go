package puzzle

import (
	"github.com/lvlath/go/bfs"
	lvcore "github.com/lvlath/go/core"
)

type Topology string

const (
	TopologySet   Topology = "set"
	TopologyChain Topology = "chain"
	TopologyRing  Topology = "ring"
	TopologyStar  Topology = "star"
)

type Evaluation string

const (
	EvaluationOrdered   Evaluation = "ordered"
	EvaluationUnordered Evaluation = "unordered"
)

// Puzzle is a declared matching task: the solution pairs plus the graph
// shape they must form.
type Puzzle struct {
	ID         string
	Topology   Topology
	Evaluation Evaluation
	Solution   []Pair
}

// Solved decides whether the player's pairing satisfies the puzzle. Pure:
// no side effects on either argument. A pairing whose size differs from
// the solution always fails before any topology work.
func Solved(p Puzzle, pairing *Pairing) bool {
	if pairing == nil || pairing.Len() != len(p.Solution) {
		return false
	}
	pairs := pairing.Pairs()
	if p.Evaluation == EvaluationOrdered {
		return solvedOrdered(p.Solution, pairs)
	}
	switch p.Topology {
	case TopologySet:
		return solvedSet(p.Solution, pairs)
	case TopologyChain:
		return solvedChain(p.Solution, pairs)
	case TopologyRing:
		return solvedRing(p.Solution, pairs)
	case TopologyStar:
		return solvedStar(p.Solution, pairs)
	default:
		return false
	}
}

// solvedOrdered requires positional equality: same left id, same right id,
// same insertion order. No permutation allowed.
func solvedOrdered(solution, pairs []Pair) bool {
	for i, s := range solution {
		if pairs[i].A != s.A || pairs[i].B != s.B {
			return false
		}
	}
	return true
}

// solvedSet requires every player pair to appear among the solution pairs,
// both compared as unordered 2-element sets.
func solvedSet(solution, pairs []Pair) bool {
	for _, pair := range pairs {
		found := false
		for _, s := range solution {
			if pair.sameUnordered(s) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// pairingGraph loads the player's pairs into an undirected simple graph.
// lvlath rejects self-loops and duplicate edges by default, which is the
// fail-closed behavior wanted for malformed pairings: a reversed duplicate
// must not count as a second chain edge.
func pairingGraph(pairs []Pair) (*lvcore.Graph, bool) {
	g, err := lvcore.NewGraph()
	if err != nil {
		return nil, false
	}
	for _, pair := range pairs {
		if _, err := g.AddEdge(pair.A, pair.B, 0); err != nil {
			return nil, false
		}
	}
	return g, true
}

// connectedCount is the number of vertices reachable from start.
func connectedCount(g *lvcore.Graph, start string) int {
	res, err := bfs.BFS(g, start)
	if err != nil {
		return 0
	}
	return len(res.Order)
}

func degree(g *lvcore.Graph, id string) int {
	_, _, undirected, err := g.Degree(id)
	if err != nil {
		return -1
	}
	return undirected
}

// solvedChain accepts exactly one simple open path covering all endpoints:
// solutionCount+1 distinct nodes, exactly two of degree 1, the rest
// reachable in a single walk (no branching, no cycles, no islands).
func solvedChain(solution, pairs []Pair) bool {
	g, ok := pairingGraph(pairs)
	if !ok {
		return false
	}
	nodes := g.Vertices()
	if len(nodes) != len(solution)+1 {
		return false
	}
	var ends []string
	for _, id := range nodes {
		switch degree(g, id) {
		case 1:
			ends = append(ends, id)
		case 2:
		default:
			return false
		}
	}
	if len(ends) != 2 {
		return false
	}
	return connectedCount(g, ends[0]) == len(nodes)
}

// solvedRing accepts a single connected cycle: every node degree 2, node
// count equal to the solution count, and at least three pairs.
func solvedRing(solution, pairs []Pair) bool {
	if len(solution) < 3 {
		return false
	}
	g, ok := pairingGraph(pairs)
	if !ok {
		return false
	}
	nodes := g.Vertices()
	if len(nodes) != len(solution) {
		return false
	}
	for _, id := range nodes {
		if degree(g, id) != 2 {
			return false
		}
	}
	return connectedCount(g, nodes[0]) == len(nodes)
}

// solvedStar requires one endpoint of every player pair to be the hub (the
// id present in every solution pair) and the other to be a declared spoke.
// A puzzle definition with no qualifying hub never solves.
func solvedStar(solution, pairs []Pair) bool {
	occurrences := map[string]int{}
	var order []string // first-seen order keeps hub selection deterministic
	for _, s := range solution {
		for _, id := range []string{s.A, s.B} {
			if _, seen := occurrences[id]; !seen {
				order = append(order, id)
			}
			occurrences[id]++
		}
		if s.A == s.B {
			occurrences[s.A]--
		}
	}
	hub := ""
	for _, id := range order {
		if occurrences[id] == len(solution) {
			hub = id
			break
		}
	}
	if hub == "" {
		return false
	}
	spokes := map[string]bool{}
	for _, s := range solution {
		if s.A == hub {
			spokes[s.B] = true
		} else {
			spokes[s.A] = true
		}
	}
	for _, pair := range pairs {
		var spoke string
		switch {
		case pair.A == hub && pair.B != hub:
			spoke = pair.B
		case pair.B == hub && pair.A != hub:
			spoke = pair.A
		default:
			return false
		}
		if !spokes[spoke] {
			return false
		}
	}
	return true
}
