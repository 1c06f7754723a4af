package ecmaregex

// Span is a half-open range [Start, End) of source offsets.
// Offsets are byte offsets for UTF-8 input and code unit offsets for UTF-16
// input, shifted by Options.SpanOffset.
type Span struct {
	Start int
	End   int
}

// Node is implemented by every syntax tree node.
type Node interface {
	NodeSpan() Span
}

// Term is one of *BoundaryAssertion, *LookAroundAssertion, *Quantifier,
// *Character, *Dot, *CharacterClassEscape, *UnicodePropertyEscape,
// *CharacterClass, *CapturingGroup, *IgnoreGroup, *IndexedReference or
// *NamedReference.
type Term interface {
	Node
	isTerm()
}

// CharacterClassContents is one of *CharacterClassRange,
// *CharacterClassEscape, *UnicodePropertyEscape, *Character,
// *CharacterClass (nested, only with FlagUnicodeSets) or
// *ClassStringDisjunction.
type CharacterClassContents interface {
	Node
	isCharacterClassContents()
}

// Pattern is the root of a parsed regular expression.
type Pattern struct {
	Span Span
	Body *Disjunction
}

// Disjunction is a non-empty list of alternatives separated by "|".
type Disjunction struct {
	Span Span
	Body []*Alternative
}

// Alternative is a possibly empty sequence of terms.
type Alternative struct {
	Span Span
	Body []Term
}

type BoundaryAssertionKind uint8

const (
	// ^
	BoundaryAssertionKindStart BoundaryAssertionKind = iota
	// $
	BoundaryAssertionKindEnd
	// \b
	BoundaryAssertionKindBoundary
	// \B
	BoundaryAssertionKindNegativeBoundary
)

type BoundaryAssertion struct {
	Span Span
	Kind BoundaryAssertionKind
}

type LookAroundAssertionKind uint8

const (
	// (?=
	LookAroundAssertionKindLookahead LookAroundAssertionKind = iota
	// (?!
	LookAroundAssertionKindNegativeLookahead
	// (?<=
	LookAroundAssertionKindLookbehind
	// (?<!
	LookAroundAssertionKindNegativeLookbehind
)

type LookAroundAssertion struct {
	Span Span
	Kind LookAroundAssertionKind
	Body *Disjunction
}

// Quantifier wraps a quantified term. Max is -1 when there is no upper bound.
// Decimal bounds that do not fit in an int saturate at math.MaxInt.
type Quantifier struct {
	Span   Span
	Min    int
	Max    int
	Greedy bool
	Body   Term
}

// CharacterKind records how a character was spelled in the source.
type CharacterKind uint8

const (
	// a
	CharacterKindSymbol CharacterKind = iota
	// \n, \b inside a class
	CharacterKindSingleEscape
	// \cJ
	CharacterKindControlLetter
	// \0
	CharacterKindNull
	// \x41
	CharacterKindHexadecimalEscape
	// \u0041, \u{41}
	CharacterKindUnicodeEscape
	// \1
	CharacterKindOctal1
	// \12
	CharacterKindOctal2
	// \123
	CharacterKindOctal3
	// \., \/, \- inside a class set
	CharacterKindIdentifier
)

type Character struct {
	Span  Span
	Kind  CharacterKind
	Value rune
}

// Dot is "." outside of a character class.
type Dot struct {
	Span Span
}

type CharacterClassEscapeKind uint8

const (
	// \d
	CharacterClassEscapeKindD CharacterClassEscapeKind = iota
	// \D
	CharacterClassEscapeKindNegativeD
	// \s
	CharacterClassEscapeKindS
	// \S
	CharacterClassEscapeKindNegativeS
	// \w
	CharacterClassEscapeKindW
	// \W
	CharacterClassEscapeKindNegativeW
)

type CharacterClassEscape struct {
	Span Span
	Kind CharacterClassEscapeKind
}

// UnicodePropertyEscape is \p{...} or \P{...}.
//
// A lone General_Category value (\p{Lu}) is reported with Name set to
// "General_Category". Value is empty for binary properties.
// Strings is true for binary properties of strings (\p{RGI_Emoji}).
type UnicodePropertyEscape struct {
	Span     Span
	Negative bool
	Strings  bool
	Name     string
	Value    string
}

type CharacterClassContentsKind uint8

const (
	CharacterClassContentsKindUnion CharacterClassContentsKind = iota
	// [a&&b], only with FlagUnicodeSets
	CharacterClassContentsKindIntersection
	// [a--b], only with FlagUnicodeSets
	CharacterClassContentsKindSubtraction
)

// CharacterClass is [...] or [^...].
// Strings holds MayContainStrings of the contents.
type CharacterClass struct {
	Span     Span
	Negative bool
	Strings  bool
	Kind     CharacterClassContentsKind
	Body     []CharacterClassContents
}

type CharacterClassRange struct {
	Span Span
	Min  *Character
	Max  *Character
}

// ClassStringDisjunction is \q{abc|de|}.
type ClassStringDisjunction struct {
	Span    Span
	Strings bool
	Body    []*ClassString
}

// ClassString is one alternative of a ClassStringDisjunction. Strings is
// true unless it holds exactly one character.
type ClassString struct {
	Span    Span
	Strings bool
	Body    []*Character
}

// CapturingGroup is (...) or (?<name>...). Name is empty for unnamed groups.
type CapturingGroup struct {
	Span Span
	Name string
	Body *Disjunction
}

// Modifiers are the flags of (?ims-ims:...).
// Only FlagIgnoreCase, FlagMultiline and FlagDotAll are ever set.
type Modifiers struct {
	Span      Span
	Enabling  Flag
	Disabling Flag
}

// IgnoreGroup is (?:...). Modifiers is nil unless flags are present.
type IgnoreGroup struct {
	Span      Span
	Modifiers *Modifiers
	Body      *Disjunction
}

// IndexedReference is \1.
type IndexedReference struct {
	Span  Span
	Index int
}

// NamedReference is \k<name>.
type NamedReference struct {
	Span Span
	Name string
}

func (n *Pattern) NodeSpan() Span                { return n.Span }
func (n *Disjunction) NodeSpan() Span            { return n.Span }
func (n *Alternative) NodeSpan() Span            { return n.Span }
func (n *BoundaryAssertion) NodeSpan() Span      { return n.Span }
func (n *LookAroundAssertion) NodeSpan() Span    { return n.Span }
func (n *Quantifier) NodeSpan() Span             { return n.Span }
func (n *Character) NodeSpan() Span              { return n.Span }
func (n *Dot) NodeSpan() Span                    { return n.Span }
func (n *CharacterClassEscape) NodeSpan() Span   { return n.Span }
func (n *UnicodePropertyEscape) NodeSpan() Span  { return n.Span }
func (n *CharacterClass) NodeSpan() Span         { return n.Span }
func (n *CharacterClassRange) NodeSpan() Span    { return n.Span }
func (n *ClassStringDisjunction) NodeSpan() Span { return n.Span }
func (n *ClassString) NodeSpan() Span            { return n.Span }
func (n *CapturingGroup) NodeSpan() Span         { return n.Span }
func (n *Modifiers) NodeSpan() Span              { return n.Span }
func (n *IgnoreGroup) NodeSpan() Span            { return n.Span }
func (n *IndexedReference) NodeSpan() Span       { return n.Span }
func (n *NamedReference) NodeSpan() Span         { return n.Span }

func (*BoundaryAssertion) isTerm()     {}
func (*LookAroundAssertion) isTerm()   {}
func (*Quantifier) isTerm()            {}
func (*Character) isTerm()             {}
func (*Dot) isTerm()                   {}
func (*CharacterClassEscape) isTerm()  {}
func (*UnicodePropertyEscape) isTerm() {}
func (*CharacterClass) isTerm()        {}
func (*CapturingGroup) isTerm()        {}
func (*IgnoreGroup) isTerm()           {}
func (*IndexedReference) isTerm()      {}
func (*NamedReference) isTerm()        {}

func (*CharacterClassRange) isCharacterClassContents()    {}
func (*CharacterClassEscape) isCharacterClassContents()   {}
func (*UnicodePropertyEscape) isCharacterClassContents()  {}
func (*Character) isCharacterClassContents()              {}
func (*CharacterClass) isCharacterClassContents()         {}
func (*ClassStringDisjunction) isCharacterClassContents() {}

// mayContainStrings computes MayContainStrings of a class body.
func mayContainStrings(kind CharacterClassContentsKind, body []CharacterClassContents) bool {
	switch kind {
	case CharacterClassContentsKindIntersection:
		if len(body) == 0 {
			return false
		}
		for _, c := range body {
			if !contentsMayContainStrings(c) {
				return false
			}
		}
		return true
	case CharacterClassContentsKindSubtraction:
		return len(body) > 0 && contentsMayContainStrings(body[0])
	default:
		for _, c := range body {
			if contentsMayContainStrings(c) {
				return true
			}
		}
		return false
	}
}

func contentsMayContainStrings(c CharacterClassContents) bool {
	switch c := c.(type) {
	case *CharacterClass:
		return c.Strings
	case *ClassStringDisjunction:
		return c.Strings
	case *UnicodePropertyEscape:
		return c.Strings
	case *CharacterClassRange, *CharacterClassEscape, *Character:
		return false
	}
	panic("ecmaregex: unknown class contents")
}
