package lexical

// White-box bridge: the letter-extraction helpers decide every adjacency,
// so tests exercise them directly without widening the public API.
var (
	FirstLetter = firstLetter
	LastLetter  = lastLetter
)
