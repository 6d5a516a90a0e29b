// Package numwords converts non-negative arbitrary-precision integers into
// their English names, e.g. 13 → "thirteen".
//
// What:
//
//   - Spell maps a *big.Int onto the American short scale using fixed lookup
//     tables for 0–19, the tens, and the scale words thousand…vigintillion.
//   - Spelling is a pure function: the same value always yields the same
//     string, with no state beyond the package-level constant tables.
//
// Convention (fixed, one of several reasonable ones):
//
//   - No "and" anywhere: 123 → "one hundred twenty-three".
//   - Compound tens-units are hyphenated: 87 → "eighty-seven".
//   - Nonzero three-digit groups are spelled highest first, each followed by
//     its scale word, joined with single spaces; zero groups are skipped:
//     2000003 → "two million three".
//   - Output is lowercase ASCII letters separated by single spaces or
//     hyphens; never empty, never with leading or trailing separators.
//
// Ceiling:
//
//   - The largest scale word is "vigintillion" (the 1000^21 group), so every
//     value below 10^66 is spellable. MaxDigits exports that bound; larger
//     values return ErrUnsupportedMagnitude, because there is no smaller-scale
//     fallback name for them.
//
// Errors:
//
//   - ErrNegativeValue: nil or negative input.
//   - ErrUnsupportedMagnitude: more than MaxDigits decimal digits.
//
// Complexity:
//
//   - Spell: O(d) big-integer divisions for a d-digit value, O(d) output.
package numwords
