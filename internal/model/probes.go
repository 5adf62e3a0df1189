package model

import "math/bits"

// Probes is a fixed-size set of hit flags. It backs both branch and
// instruction coverage: merging two captures is a bitwise union, which a
// scalar hit counter cannot express.
type Probes struct {
	size  int
	words []uint64
}

// NewProbes creates an empty set able to hold size flags.
func NewProbes(size int) Probes {
	if size < 0 {
		size = 0
	}

	return Probes{size: size, words: make([]uint64, (size+63)/64)}
}

// Len returns the number of flags the set was created with.
func (p Probes) Len() int {
	return p.size
}

// Set marks index i as hit. Out of range indices are ignored.
func (p *Probes) Set(i int) {
	if i < 0 || i >= p.size {
		return
	}

	p.words[i/64] |= 1 << (uint(i) % 64)
}

// Has reports whether index i was hit.
func (p Probes) Has(i int) bool {
	if i < 0 || i >= p.size {
		return false
	}

	return p.words[i/64]&(1<<(uint(i)%64)) != 0
}

// Count returns the number of hit flags.
func (p Probes) Count() int {
	n := 0
	for _, w := range p.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Indices lists hit indices in ascending order.
func (p Probes) Indices() []int {
	out := make([]int, 0, p.Count())

	for i := 0; i < p.size; i++ {
		if p.Has(i) {
			out = append(out, i)
		}
	}

	return out
}

// Union returns a new set holding every flag hit in p or o. When the sizes
// disagree the larger one wins.
func (p Probes) Union(o Probes) Probes {
	size := p.size
	if o.size > size {
		size = o.size
	}

	out := NewProbes(size)
	copy(out.words, p.words)

	for i, w := range o.words {
		out.words[i] |= w
	}

	return out
}

// Clone returns an independent copy.
func (p Probes) Clone() Probes {
	out := Probes{size: p.size, words: make([]uint64, len(p.words))}
	copy(out.words, p.words)

	return out
}

// Cleared returns a set of the same size with nothing hit.
func (p Probes) Cleared() Probes {
	return NewProbes(p.size)
}

// equal compares size and content.
func (p Probes) equal(o Probes) bool {
	if p.size != o.size {
		return false
	}

	for i := range p.words {
		if p.words[i] != o.words[i] {
			return false
		}
	}

	return true
}
