// Package fibseq produces the Fibonacci sequence 0, 1, 1, 2, 3, 5, 8, 13, …
// as a lazy, restartable stream of arbitrary-precision integers with no
// final term.
//
// What:
//
//   - Generator holds the classic pair-advance state (current term and its
//     successor) and hands out one term per Next call, as a defensive copy
//     the caller owns outright.
//   - A fresh Generator, or one after Reset, always starts at index 0, so
//     two generators driven the same way produce identical streams.
//   - Term(k) is a convenience for the k-th term in isolation.
//
// Why big.Int:
//
//   - Fibonacci numbers grow exponentially (about one decimal digit every
//     4.78 terms); no fixed-width integer survives past term 93. Generation
//     itself therefore never fails; the consumer decides how far to pull.
//
// Complexity:
//
//   - Next: one big-integer addition per term (the cost of that addition
//     grows with the term's digit count, as it must).
//   - Term(k): O(k) additions on a fresh generator; nothing is cached.
//
// Errors:
//
//   - ErrNegativeIndex: Term called with k < 0. Next itself cannot fail.
package fibseq
