package numwords_test

import (
	"math/big"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lexfib/numwords"
)

// goldenFile mirrors the layout of testdata/spellings.yaml.
type goldenFile struct {
	Cases []goldenCase `yaml:"cases"`
}

// goldenCase is one value/words pair; Value stays a decimal string so the
// fixture never has to hold big integers.
type goldenCase struct {
	Value string `yaml:"value"`
	Words string `yaml:"words"`
}

// TestSpell_Golden replays every fixture case against Spell.
func TestSpell_Golden(t *testing.T) {
	raw, err := os.ReadFile("testdata/spellings.yaml")
	require.NoError(t, err, "fixture must be readable")

	var golden goldenFile
	require.NoError(t, yaml.Unmarshal(raw, &golden), "fixture must parse")
	require.NotEmpty(t, golden.Cases, "fixture must hold cases")

	for _, tc := range golden.Cases {
		v, ok := new(big.Int).SetString(tc.Value, 10)
		require.True(t, ok, "fixture value %q must be decimal", tc.Value)

		got, spellErr := numwords.Spell(v)
		require.NoError(t, spellErr, "Spell(%s)", tc.Value)
		assert.Equal(t, tc.Words, got, "Spell(%s)", tc.Value)
	}
}

// TestSpell_AtomicNames walks the atomic range 0–19 and the tens, the two
// fixed lookup tables every larger spelling is assembled from.
func TestSpell_AtomicNames(t *testing.T) {
	atoms := []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	}
	for i, want := range atoms {
		got, err := numwords.Spell(big.NewInt(int64(i)))
		require.NoError(t, err)
		assert.Equal(t, want, got, "Spell(%d)", i)
	}

	tens := []string{"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	for i, want := range tens {
		v := int64(10 * (i + 2))
		got, err := numwords.Spell(big.NewInt(v))
		require.NoError(t, err)
		assert.Equal(t, want, got, "Spell(%d)", v)
	}
}

// TestSpell_CompoundTens verifies the hyphenated tens-units convention for
// every value between twenty-one and twenty-nine.
func TestSpell_CompoundTens(t *testing.T) {
	for units := int64(1); units <= 9; units++ {
		unitsWord, err := numwords.Spell(big.NewInt(units))
		require.NoError(t, err)

		got, err := numwords.Spell(big.NewInt(20 + units))
		require.NoError(t, err)
		assert.Equal(t, "twenty-"+unitsWord, got, "Spell(%d)", 20+units)
	}
}

// TestSpell_SkipsZeroGroups ensures all-zero groups vanish instead of being
// spelled as "zero thousand" and friends.
func TestSpell_SkipsZeroGroups(t *testing.T) {
	cases := map[string]string{
		"1000000":       "one million",
		"2000003":       "two million three",
		"1000000000000": "one trillion",
		"5000000010":    "five billion ten",
	}
	for value, want := range cases {
		v, ok := new(big.Int).SetString(value, 10)
		require.True(t, ok)

		got, err := numwords.Spell(v)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Spell(%s)", value)
	}
}

// TestSpell_Alphabet checks the documented output contract: lowercase ASCII
// words separated by single spaces or hyphens, never empty.
func TestSpell_Alphabet(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z]+([ -][a-z]+)*$`)
	for i := int64(0); i <= 2000; i++ {
		got, err := numwords.Spell(big.NewInt(i))
		require.NoError(t, err)
		assert.Regexp(t, shape, got, "Spell(%d)", i)
	}

	// A scattering of larger magnitudes, one per scale word.
	v := big.NewInt(1)
	thousand := big.NewInt(1000)
	for scale := 0; scale < 21; scale++ {
		v.Mul(v, thousand)
		got, err := numwords.Spell(v)
		require.NoError(t, err)
		assert.Regexp(t, shape, got, "Spell(10^%d)", 3*(scale+1))
	}
}

// TestSpell_Deterministic confirms repeated calls agree byte for byte and
// keep the boundary letters stable.
func TestSpell_Deterministic(t *testing.T) {
	v, ok := new(big.Int).SetString("86267571272", 10)
	require.True(t, ok)

	first, err := numwords.Spell(v)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := numwords.Spell(v)
		require.NoError(t, err)
		assert.Equal(t, first, again, "call %d must match the first", i)
	}
	assert.Equal(t, byte('e'), first[0], "first letter stable")
	assert.Equal(t, byte('o'), first[len(first)-1], "last letter stable")
}

// TestSpell_RejectsNegative covers the nil and below-zero inputs.
func TestSpell_RejectsNegative(t *testing.T) {
	_, err := numwords.Spell(nil)
	assert.ErrorIs(t, err, numwords.ErrNegativeValue, "nil input must error")

	_, err = numwords.Spell(big.NewInt(-1))
	assert.ErrorIs(t, err, numwords.ErrNegativeValue, "negative input must error")
}

// TestSpell_MagnitudeCeiling pins the documented 10^66 bound: the largest
// 66-digit value still spells, one more digit does not.
func TestSpell_MagnitudeCeiling(t *testing.T) {
	// 10^66 - 1: sixty-six nines, the last spellable value.
	top, ok := new(big.Int).SetString(strings.Repeat("9", numwords.MaxDigits), 10)
	require.True(t, ok)

	words, err := numwords.Spell(top)
	require.NoError(t, err, "66 digits must still spell")
	assert.True(t, strings.HasPrefix(words, "nine hundred ninety-nine vigintillion"), "highest group must carry the last scale word")
	assert.True(t, strings.HasSuffix(words, "nine hundred ninety-nine"), "unit group must close the spelling")

	// 10^66: one digit past the ceiling.
	over := new(big.Int).Add(top, big.NewInt(1))
	_, err = numwords.Spell(over)
	assert.ErrorIs(t, err, numwords.ErrUnsupportedMagnitude, "67 digits must overflow the scale table")
}

// TestSpell_DoesNotMutateInput guards the pure-function contract.
func TestSpell_DoesNotMutateInput(t *testing.T) {
	v, ok := new(big.Int).SetString("139583862445", 10)
	require.True(t, ok)
	snapshot := new(big.Int).Set(v)

	_, err := numwords.Spell(v)
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(snapshot), "Spell must leave its argument untouched")
}
