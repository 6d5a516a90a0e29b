// Package lexical scans consecutive Fibonacci numbers for n-tuples whose
// English spellings form a letter-adjacency chain: the last letter of each
// term's spelled name equals the first letter of the next term's name.
//
// What
//
//   - Slides a window of n consecutive Fibonacci terms along the sequence,
//     spelling each term exactly once via numwords.
//   - Tests the n-1 adjacencies of every window; windows overlap, so each
//     starting index is examined independently and the enumeration is
//     exhaustive over all contiguous runs.
//   - Emits matches lazily as Tuple values in strictly increasing order of
//     starting index. A Tuple carries the matched values together with their
//     spellings and the window's position in the sequence.
//
// Why
//
//   - The two known n=2 openers, (0, 1) and (5, 8), are 5 windows apart;
//     the second n=3 match sits past the 50th term. Exhaustive overlapping
//     windows with memoized spellings keep such scans exact and cheap.
//   - Letter adjacency only needs each word's first and last letter, but
//     the full spellings ride along on every Tuple for display and fusion
//     (see Tuple.Merged).
//
// Determinism
//
//	Fibonacci generation and spelling are both pure, so identical queries
//	yield identical tuple sequences, run after run.
//
// Complexity (k = terms scanned, n = arity)
//
//   - Time:   one big-int addition and one spelling per term pulled, plus
//     n-1 single-byte comparisons per window.
//   - Memory: the n retained window entries (term magnitudes grow with the
//     Fibonacci index being explored).
//
// Usage
//
//	// Collect the first three chained pairs:
//	tuples, err := lexical.Find(2, 3)
//	if err != nil {
//	    // handle ErrInvalidArity, ErrInvalidLimit, ErrOptionViolation,
//	    // a wrapped numwords.ErrUnsupportedMagnitude, or ErrTermLimit
//	}
//
//	// Stream indefinitely under a scan budget:
//	f, err := lexical.NewFinder(3, lexical.WithMaxTerms(100_000))
//	if err != nil {
//	    // handle ErrInvalidArity / ErrOptionViolation
//	}
//	for {
//	    t, err := f.Next()
//	    if err != nil {
//	        break
//	    }
//	    fmt.Println(t)
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op observer, no term budget.
//   - WithContext(ctx):  cancellation, checked once per pulled term.
//   - WithOnTerm(fn):    observer invoked exactly once per pulled term.
//   - WithMaxTerms(k):   stop after pulling k terms (k == 0 means no budget).
//
// Errors
//
//   - ErrInvalidArity      if the requested arity is below 2.
//   - ErrInvalidLimit      if Find is given a negative limit.
//   - ErrOptionViolation   if an invalid Option is supplied.
//   - ErrTermLimit         once a WithMaxTerms budget is exhausted.
//   - numwords.ErrUnsupportedMagnitude, wrapped, once terms outgrow the
//     largest scale word numwords knows.
//   - The context's error on cancellation.
package lexical
