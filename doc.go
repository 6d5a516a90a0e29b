// Package lexfib is your playground for hunting lexical tuples: runs of
// consecutive Fibonacci numbers whose English spellings chain letter to
// letter, like (5, 8, 13) → five, eight, thirteen.
//
// 🚀 What is a lexical tuple?
//
//	An n-tuple of consecutive Fibonacci numbers where, for every adjacent
//	pair, the last letter of the first number's spelled-out name equals the
//	first letter of the next one's:
//		five → eight   (…e / e…)
//		eight → thirteen  (…t / t…)
//	The hunt is exact: big.Int arithmetic throughout, with every sliding
//	window tested and matches streamed in order of their starting index.
//
// ✨ Why choose lexfib?
//
//   - Exact – arbitrary-precision Fibonacci terms, no silent overflow
//   - Lazy – pull-based finder; the consumer sets the pace
//   - Deterministic – the same query always yields the same tuples
//   - Observable – per-term hooks, context cancellation & scan budgets
//
// Everything is organized under three subpackages plus a tiny CLI:
//
//	numwords/   - non-negative big.Int → English words (American short scale)
//	fibseq/     - lazy, restartable big.Int Fibonacci generator
//	lexical/    - sliding-window finder streaming lexical tuples
//	cmd/lexfib/ - command-line front end printing tuples one per line
//
// Quick taste:
//
//	tuples, err := lexical.Find(3, 1)
//	// tuples[0].String() == "(5, 8, 13)"
//	// tuples[0].Words   == ["five", "eight", "thirteen"]
//
// Spelling follows one fixed, documented convention (no "and", hyphenated
// compounds, scale words up to vigintillion); see numwords for the details
// and the magnitude ceiling beyond which spelling, and therefore the hunt,
// must stop.
//
//	go get github.com/katalvlaran/lexfib
package lexfib
