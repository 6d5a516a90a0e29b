// tables.go - canonical name tables for English number spelling (data-only).
//
// This file is the single source of truth for every word Spell can emit.
// The tables are constructed once at package initialization and are never
// mutated; building logic lives in spell.go.

package numwords

// onesNames spells the atomic range 0–19.
// Index equals value; onesNames[0] doubles as the spelling of zero itself.
var onesNames = [...]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tensNames spells the multiples of ten from twenty upward; index is the
// tens digit. Indices 0 and 1 stay empty: values below twenty are atomic
// and resolved through onesNames.
var tensNames = [...]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// scaleNames spells the American short-scale group words: scaleNames[i]
// names the 1000^(i+1) group. The list ends at vigintillion (1000^21),
// which fixes the package ceiling documented by MaxDigits.
var scaleNames = [...]string{
	"thousand",
	"million",
	"billion",
	"trillion",
	"quadrillion",
	"quintillion",
	"sextillion",
	"septillion",
	"octillion",
	"nonillion",
	"decillion",
	"undecillion",
	"duodecillion",
	"tredecillion",
	"quattuordecillion",
	"quindecillion",
	"sexdecillion",
	"septendecillion",
	"octodecillion",
	"novemdecillion",
	"vigintillion",
}

// nameHundred joins a group's hundreds digit to its remainder.
const nameHundred = "hundred"
