// Package ecmaregex parses ECMAScript regular expression patterns into a
// span-annotated syntax tree.
//
// The parser follows the ECMAScript grammar exactly, including the legacy
// web-compat grammar of Annex B (used when neither FlagUnicode nor
// FlagUnicodeSets is set), the Unicode mode grammar ("u" flag) and the
// Unicode sets mode grammar ("v" flag). All early errors are reported as
// *SyntaxError values.
//
// Parsing is done in two passes. The first pass scans the whole pattern to
// count capturing groups and collect group names, so that forward references
// like \k<a>(?<a>x) can be validated. The second pass is a recursive descent
// over the grammar that builds the tree.
package ecmaregex

// Flag is a bitmask of RegExp options.
// The zero value corresponds to /pattern/ with no flags.
// Combine flags with bitwise OR, e.g. FlagIgnoreCase|FlagMultiline.
type Flag uint16

const (
	// Case-insensitive matching ("i" flag).
	FlagIgnoreCase Flag = 1 << iota

	// "^" and "$" match line boundaries ("m" flag).
	FlagMultiline

	// "." matches line terminators ("s" flag).
	FlagDotAll

	// Unicode-aware mode ("u" flag).
	FlagUnicode

	// Unicode set notation and string properties ("v" flag).
	// Implies Unicode mode.
	FlagUnicodeSets

	// Sticky match from current position ("y" flag).
	FlagSticky

	// Global match ("g" flag). Does not affect parsing.
	FlagGlobal

	// Match indices ("d" flag). Does not affect parsing.
	FlagHasIndices

	flagEitherUnicode = FlagUnicode | FlagUnicodeSets
)

var flagLetters = [...]struct {
	flag   Flag
	letter byte
}{
	{FlagHasIndices, 'd'},
	{FlagGlobal, 'g'},
	{FlagIgnoreCase, 'i'},
	{FlagMultiline, 'm'},
	{FlagDotAll, 's'},
	{FlagUnicode, 'u'},
	{FlagUnicodeSets, 'v'},
	{FlagSticky, 'y'},
}

// String returns the flags in the canonical order used by
// RegExp.prototype.flags, e.g. "dgimsuvy".
func (f Flag) String() string {
	res := make([]byte, 0, len(flagLetters))
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			res = append(res, fl.letter)
		}
	}
	return string(res)
}

func flagFromLetter(c rune) (Flag, bool) {
	for _, fl := range flagLetters {
		if rune(fl.letter) == c {
			return fl.flag, true
		}
	}
	return 0, false
}

// Options configure a Parser.
type Options struct {
	// Flags select the grammar. Only FlagUnicode and FlagUnicodeSets change
	// how a pattern is parsed.
	Flags Flag

	// SpanOffset is added to every span, so that spans can point into the
	// source file that contains the pattern.
	SpanOffset int
}

// Parse parses a UTF-8 encoded pattern.
func Parse(pattern string, opts Options) (*Pattern, error) {
	return NewParser(pattern, opts).Parse()
}

// ParseUTF16 parses a pattern expressed as UTF-16 code units. Spans count
// code units instead of bytes. Lone surrogates are allowed.
func ParseUTF16(pattern []uint16, opts Options) (*Pattern, error) {
	return NewParserUTF16(pattern, opts).Parse()
}

// MustParse is like [Parse] but panics if the pattern cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(pattern string, opts Options) *Pattern {
	p, err := Parse(pattern, opts)
	if err != nil {
		panic("ecmaregex: MustParse: " + err.Error())
	}
	return p
}
