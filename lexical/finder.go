// Package lexical implements the sliding-window scan that pairs the
// Fibonacci stream with per-term English spellings and emits every window
// whose adjacency chain holds.
package lexical

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexfib/fibseq"
	"github.com/katalvlaran/lexfib/numwords"
)

// minArity is the smallest meaningful tuple size: one adjacency needs two words.
const minArity = 2

// windowEntry pairs a pulled Fibonacci term with its spelling, computed
// exactly once when the term enters the window.
type windowEntry struct {
	value *big.Int
	word  string
}

// Finder is a lazy scanner over the Fibonacci sequence. Construct with
// NewFinder; each call to Next returns the next matching Tuple in strictly
// increasing start order. A Finder is not safe for concurrent use.
type Finder struct {
	arity  int
	opts   FinderOptions
	gen    *fibseq.Generator
	window []windowEntry
	pulled int
}

// NewFinder builds a Finder for tuples of the given arity, applying any
// number of functional Options.
// Returns ErrInvalidArity for arity < 2 (before any generation begins) or
// ErrOptionViolation for bad options.
func NewFinder(arity int, opts ...Option) (*Finder, error) {
	if arity < minArity {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArity, arity)
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Finder{
		arity:  arity,
		opts:   o,
		gen:    fibseq.New(),
		window: make([]windowEntry, 0, arity),
	}, nil
}

// Next advances the scan until a window satisfies all adjacencies and
// returns it as a Tuple the caller owns. Windows overlap: the scan moves
// one term at a time, so every contiguous run of arity terms is tested and
// matches come back in strictly increasing start order.
//
// Next keeps returning results until the stream fails. Cancellation
// surfaces the context's error and an exhausted WithMaxTerms budget
// surfaces ErrTermLimit; once terms outgrow the spelling ceiling the scan
// stops for good with a wrapped numwords.ErrUnsupportedMagnitude.
func (f *Finder) Next() (Tuple, error) {
	for {
		// cancellation check (once per pulled term)
		select {
		case <-f.opts.Ctx.Done():
			return Tuple{}, f.opts.Ctx.Err()
		default:
		}
		if f.opts.MaxTerms > 0 && f.pulled >= f.opts.MaxTerms {
			return Tuple{}, fmt.Errorf("%w after %d terms", ErrTermLimit, f.pulled)
		}

		index := f.gen.Index()
		value := f.gen.Next()
		word, err := numwords.Spell(value)
		if err != nil {
			return Tuple{}, fmt.Errorf("lexical: spelling term %d: %w", index, err)
		}
		f.pulled++
		f.opts.OnTerm(index, value, word)

		f.push(windowEntry{value: value, word: word})
		if len(f.window) == f.arity && f.chained() {
			return f.emit(), nil
		}
	}
}

// Terms reports how many Fibonacci terms the scan has pulled so far; the
// highest index examined is Terms()-1.
func (f *Finder) Terms() int {
	return f.pulled
}

// push appends e to the window, evicting the oldest entry once full.
func (f *Finder) push(e windowEntry) {
	if len(f.window) == f.arity {
		copy(f.window, f.window[1:])
		f.window[len(f.window)-1] = e

		return
	}
	f.window = append(f.window, e)
}

// chained reports whether every consecutive word pair in the window links
// up: last letter of the earlier word equals first letter of the later one.
func (f *Finder) chained() bool {
	for i := 0; i < len(f.window)-1; i++ {
		last := lastLetter(f.window[i].word)
		first := firstLetter(f.window[i+1].word)
		if last == 0 || last != first {
			return false
		}
	}

	return true
}

// emit snapshots the window as a Tuple. Values are copied so callers may
// mutate results without disturbing the scan.
func (f *Finder) emit() Tuple {
	t := Tuple{
		Start: f.pulled - f.arity,
		Terms: make([]*big.Int, f.arity),
		Words: make([]string, f.arity),
	}
	for i, e := range f.window {
		t.Terms[i] = new(big.Int).Set(e.value)
		t.Words[i] = e.word
	}

	return t
}

// Find collects up to limit tuples of the given arity from a fresh scan.
// A negative limit yields ErrInvalidLimit; limit 0 yields no tuples (the
// arity and options are still validated). If the stream fails before limit
// tuples are found, Find returns the tuples collected so far together with
// the error.
func Find(arity, limit int, opts ...Option) ([]Tuple, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	f, err := NewFinder(arity, opts...)
	if err != nil {
		return nil, err
	}

	var tuples []Tuple
	for len(tuples) < limit {
		t, err := f.Next()
		if err != nil {
			return tuples, err
		}
		tuples = append(tuples, t)
	}

	return tuples, nil
}

// firstLetter returns the first ASCII letter of w, skipping separator
// bytes; 0 if w holds no letter.
func firstLetter(w string) byte {
	for i := 0; i < len(w); i++ {
		if isLetter(w[i]) {
			return w[i]
		}
	}

	return 0
}

// lastLetter returns the last ASCII letter of w, skipping separator bytes;
// 0 if w holds no letter.
func lastLetter(w string) byte {
	for i := len(w) - 1; i >= 0; i-- {
		if isLetter(w[i]) {
			return w[i]
		}
	}

	return 0
}

// isLetter reports whether b is a lowercase ASCII letter, the only
// alphabet numwords emits.
func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
