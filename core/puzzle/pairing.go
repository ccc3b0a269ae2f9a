package puzzle

// Pair is an association between two slide ids. Directed in storage,
// undirected in meaning.
type Pair struct {
	A string
	B string
}

// sameUnordered compares two pairs as 2-element sets.
func (p Pair) sameUnordered(q Pair) bool {
	return (p.A == q.A && p.B == q.B) || (p.A == q.B && p.B == q.A)
}

// Pairing is the player's pairing record for one puzzle: at most one
// outgoing pairing per key, insertion order preserved so ordered puzzles
// can be evaluated positionally.
type Pairing struct {
	keys []string
	to   map[string]string
}

func NewPairing() *Pairing {
	return &Pairing{to: map[string]string{}}
}

func (p *Pairing) Len() int { return len(p.keys) }

// Pairs returns the directed pairs in insertion order.
func (p *Pairing) Pairs() []Pair {
	out := make([]Pair, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, Pair{A: k, B: p.to[k]})
	}
	return out
}

// Toggle inserts a→b, unless the same unordered pair is already recorded
// (in either direction), in which case it is removed. A key being re-paired
// to a different value drops its old pairing first. Returns true when the
// pair is present after the call.
func (p *Pairing) Toggle(a, b string) bool {
	if v, ok := p.to[a]; ok && v == b {
		p.remove(a)
		return false
	}
	if v, ok := p.to[b]; ok && v == a {
		p.remove(b)
		return false
	}
	if _, ok := p.to[a]; ok {
		p.remove(a)
	}
	p.keys = append(p.keys, a)
	p.to[a] = b
	return true
}

// Reset clears every recorded pair.
func (p *Pairing) Reset() {
	p.keys = p.keys[:0]
	p.to = map[string]string{}
}

func (p *Pairing) remove(key string) {
	delete(p.to, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			return
		}
	}
}
