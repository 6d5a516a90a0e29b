package fibseq

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeIndex is returned by Term when asked for a term before the
// start of the sequence.
var ErrNegativeIndex = errors.New("fibseq: term index must be non-negative")

// Generator is a lazy Fibonacci stream. The zero value is not ready for
// use; construct with New. A Generator is not safe for concurrent use.
type Generator struct {
	// curr is the term the next call to Next returns; succ is its successor.
	curr *big.Int
	succ *big.Int
	// index is the sequence position of curr, starting at 0.
	index int
}

// New returns a Generator positioned at the start of the sequence, so the
// first Next yields 0 and the second yields 1.
func New() *Generator {
	return &Generator{
		curr: big.NewInt(0),
		succ: big.NewInt(1),
	}
}

// Next returns the current term and advances the stream by one position.
// The result is a fresh big.Int the caller owns; mutating it never
// disturbs the stream.
func (g *Generator) Next() *big.Int {
	term := new(big.Int).Set(g.curr)
	g.curr.Add(g.curr, g.succ)
	g.curr, g.succ = g.succ, g.curr
	g.index++
	return term
}

// Index reports the sequence position of the term the next call to Next
// will return. A fresh or freshly Reset Generator reports 0.
func (g *Generator) Index() int {
	return g.index
}

// Reset rewinds the Generator to the start of the sequence, reusing the
// existing state. After Reset the Generator is indistinguishable from a
// newly constructed one.
func (g *Generator) Reset() {
	g.curr.SetInt64(0)
	g.succ.SetInt64(1)
	g.index = 0
}

// Term returns the k-th Fibonacci number (Term(0) == 0, Term(1) == 1) by
// running a fresh Generator forward; it shares no state across calls.
// A negative k yields ErrNegativeIndex.
func Term(k int) (*big.Int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeIndex, k)
	}
	g := New()
	term := g.Next()
	for i := 0; i < k; i++ {
		term = g.Next()
	}
	return term, nil
}
