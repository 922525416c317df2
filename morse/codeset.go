package morse

// basePairs is the international code for letters and digits, in the order
// the reference tables were generated from. Placeholder identities in the
// index-doubling scheme depend on trie shape only, but keeping the order makes
// the entry listings line up with the published tables.
var basePairs = []Pair{
	{"A", ".-"},
	{"B", "-..."},
	{"C", "-.-."},
	{"D", "-.."},
	{"E", "."},
	{"F", "..-."},
	{"G", "--."},
	{"H", "...."},
	{"I", ".."},
	{"J", ".---"},
	{"K", "-.-"},
	{"L", ".-.."},
	{"M", "--"},
	{"N", "-."},
	{"O", "---"},
	{"P", ".--."},
	{"Q", "--.-"},
	{"R", ".-."},
	{"S", "..."},
	{"T", "-"},
	{"U", "..-"},
	{"V", "...-"},
	{"W", ".--"},
	{"X", "-..-"},
	{"Y", "-.--"},
	{"Z", "--.."},
	{"1", ".----"},
	{"2", "..---"},
	{"3", "...--"},
	{"4", "....-"},
	{"5", "....."},
	{"6", "-...."},
	{"7", "--..."},
	{"8", "---.."},
	{"9", "----."},
	{"0", "-----"},
}

var punctuationPairs = []Pair{
	{".", ".-.-.-"},
	{",", "--..--"},
	{":", "---..."},
	{"?", "..--.."},
	{"'", ".----."},
	{"-", "-....-"},
	{"/", "-..-."},
	{"(", "-.--."},
	{")", "-.--.-"},
	{"=", "-...-"},
}

// BasePairs returns a copy of the letter and digit code set.
func BasePairs() []Pair {
	return append([]Pair(nil), basePairs...)
}

// ExtendedPairs returns a copy of the base set followed by punctuation.
func ExtendedPairs() []Pair {
	out := make([]Pair, 0, len(basePairs)+len(punctuationPairs))
	out = append(out, basePairs...)
	return append(out, punctuationPairs...)
}

// BaseCodes returns the parsed letter and digit code set.
func BaseCodes() []Entry {
	return mustParsePairs(basePairs)
}

// ExtendedCodes returns the parsed base set followed by punctuation.
func ExtendedCodes() []Entry {
	return mustParsePairs(ExtendedPairs())
}

func mustParsePairs(pairs []Pair) []Entry {
	entries, err := ParsePairs(pairs)
	if err != nil {
		panic(err)
	}
	return entries
}
