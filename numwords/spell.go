package numwords

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Sentinel errors for spelling requests.
var (
	// ErrNegativeValue is returned when the input is nil or below zero.
	ErrNegativeValue = errors.New("numwords: value must be a non-negative integer")

	// ErrUnsupportedMagnitude is returned when the value has more than
	// MaxDigits decimal digits and no scale word can name its highest group.
	ErrUnsupportedMagnitude = errors.New("numwords: value exceeds the largest supported scale word")
)

// MaxDigits is the spelling ceiling: Spell accepts values with at most this
// many decimal digits, i.e. everything below 10^66. The bound follows from
// the last entry of scaleNames: "vigintillion" names the 1000^21 group, so
// the highest spellable group sits at 10^63 and tops out just under 10^66.
const MaxDigits = 66

// groupBase is the thousands-grouping radix: each spelled group covers three
// decimal digits.
const groupBase = 1000

// maxGroups is the unit group plus one group per scale word.
const maxGroups = len(scaleNames) + 1

// groupDivisor is the shared big-integer radix used to peel off groups.
// It is only ever read, never written.
var groupDivisor = big.NewInt(groupBase)

// Spell converts a non-negative arbitrary-precision integer into its English
// name under the package convention (American short scale, no "and",
// hyphenated compound tens; see the package documentation).
//
// Spell is a pure function of v and never mutates it. It returns
// ErrNegativeValue for nil or negative input and ErrUnsupportedMagnitude for
// values of more than MaxDigits decimal digits.
func Spell(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 {
		return "", ErrNegativeValue
	}
	if v.Sign() == 0 {
		return onesNames[0], nil
	}

	// Peel three-digit groups off a working copy, least significant first.
	groups := make([]int64, 0, maxGroups)
	rest := new(big.Int).Set(v)
	mod := new(big.Int)
	for rest.Sign() > 0 {
		rest.DivMod(rest, groupDivisor, mod)
		groups = append(groups, mod.Int64())
	}
	if len(groups) > maxGroups {
		return "", fmt.Errorf("%w: %d decimal digits (max %d)", ErrUnsupportedMagnitude, digitLen(v), MaxDigits)
	}

	// Spell nonzero groups highest first, each with its scale word.
	var sb strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		spellGroup(&sb, int(groups[i]))
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(scaleNames[i-1])
		}
	}

	return sb.String(), nil
}

// spellGroup writes the English form of a single group g, 1 ≤ g ≤ 999.
func spellGroup(sb *strings.Builder, g int) {
	if g >= 100 {
		sb.WriteString(onesNames[g/100])
		sb.WriteByte(' ')
		sb.WriteString(nameHundred)
		g %= 100
		if g == 0 {
			return
		}
		sb.WriteByte(' ')
	}
	if g < 20 {
		sb.WriteString(onesNames[g])
		return
	}
	sb.WriteString(tensNames[g/10])
	if g%10 > 0 {
		sb.WriteByte('-')
		sb.WriteString(onesNames[g%10])
	}
}

// digitLen counts the decimal digits of a positive value.
func digitLen(v *big.Int) int {
	return len(v.Text(10))
}
