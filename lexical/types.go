// Package lexical provides tunable options, result types, and error
// definitions for the Fibonacci lexical-tuple scan.
package lexical

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Sentinel errors for the tuple scan.
var (
	// ErrInvalidArity is returned when the requested tuple arity is below 2;
	// a 1-tuple has no adjacency to test.
	ErrInvalidArity = errors.New("lexical: tuple arity must be at least 2")

	// ErrInvalidLimit is returned when Find is asked for a negative number
	// of tuples.
	ErrInvalidLimit = errors.New("lexical: tuple limit must be non-negative")

	// ErrTermLimit is returned by Next once a WithMaxTerms budget is spent.
	ErrTermLimit = errors.New("lexical: term budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lexical: invalid option supplied")
)

// Tuple is one match: consecutive Fibonacci terms whose spellings chain.
type Tuple struct {
	// Start is the Fibonacci index of the first term in the window.
	Start int

	// Terms holds the consecutive Fibonacci values, in sequence order.
	// The slice and its elements are owned by the caller.
	Terms []*big.Int

	// Words holds the English spelling of each term, aligned with Terms.
	Words []string
}

// String renders the tuple in parenthesized comma-separated form,
// e.g. "(5, 8, 13)".
func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range t.Terms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

// Merged fuses the tuple's words into a single token, writing each shared
// boundary letter once: (5, 8, 13) spells five/eight/thirteen and merges
// to "fiveighthirteen".
func (t Tuple) Merged() string {
	var sb strings.Builder
	for i, w := range t.Words {
		if i > 0 && len(w) > 0 {
			w = w[1:]
		}
		sb.WriteString(w)
	}

	return sb.String()
}

// Option configures the scan via functional arguments.
// If an Option is invalid (e.g. a negative term budget), the violation is
// recorded internally and surfaced as ErrOptionViolation when the Finder
// is built.
type Option func(*FinderOptions)

// FinderOptions holds parameters and callbacks to customize the scan.
type FinderOptions struct {
	// Ctx allows cancellation and deadlines, checked once per pulled term.
	Ctx context.Context

	// OnTerm is called exactly once per Fibonacci term pulled, after its
	// spelling is computed. Receives the term's sequence index, its value,
	// and its spelling. The value is retained by the scan and must be
	// treated as read-only.
	OnTerm func(index int, value *big.Int, word string)

	// MaxTerms, if > 0, stops the scan after pulling this many terms.
	// A value of 0 explicitly disables the budget.
	MaxTerms int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a FinderOptions with sane defaults:
//   - Context.Background()
//   - no-op OnTerm observer
//   - no term budget (MaxTerms == 0)
//   - error channel clear.
func DefaultOptions() FinderOptions {
	return FinderOptions{
		Ctx:      context.Background(),
		OnTerm:   func(int, *big.Int, string) {},
		MaxTerms: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *FinderOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnTerm registers an observer called once per pulled term.
func WithOnTerm(fn func(index int, value *big.Int, word string)) Option {
	return func(o *FinderOptions) {
		if fn != nil {
			o.OnTerm = fn
		}
	}
}

// WithMaxTerms caps how many Fibonacci terms the scan may pull.
//
//	k > 0: Next returns ErrTermLimit after k terms
//	k == 0: explicit no budget
//	k < 0: invalid option → ErrOptionViolation
func WithMaxTerms(k int) Option {
	return func(o *FinderOptions) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: MaxTerms cannot be negative (%d)", ErrOptionViolation, k)
		case k == 0:
			// explicit "no budget"
			o.MaxTerms = 0
		default:
			o.MaxTerms = k
		}
	}
}
