package ecmaregex

// ErrorKind classifies a SyntaxError.
type ErrorKind uint8

const (
	// Early errors of the pre-pass.
	ErrorKindTooManyCapturingGroups ErrorKind = iota
	ErrorKindDuplicatedGroupName

	// Structural errors.
	ErrorKindCouldNotParseEntirePattern
	ErrorKindLoneQuantifier
	ErrorKindInvalidBracedQuantifier
	ErrorKindUnterminatedLookaroundAssertion
	ErrorKindUnterminatedCapturingGroup
	ErrorKindUnterminatedIgnoreGroup
	ErrorKindUnterminatedCharacterClass
	ErrorKindUnterminatedClassStringDisjunction
	ErrorKindUnterminatedUnicodePropertyEscape
	ErrorKindMissingCapturingGroupName
	ErrorKindInvalidModifiers

	// Lexical and escape errors.
	ErrorKindInvalidAtomEscape
	ErrorKindInvalidEscape
	ErrorKindInvalidClassEscape
	ErrorKindInvalidHexadecimalEscape
	ErrorKindInvalidUnicodeEscapeSequence
	ErrorKindInvalidSurrogatePair
	ErrorKindInvalidUnicodePropertyName
	ErrorKindInvalidClassSetOperation

	// Static semantics.
	ErrorKindInvalidIndexedReference
	ErrorKindInvalidNamedReference
	ErrorKindEmptyGroupSpecifiersThatMatch
	ErrorKindUnicodeSetsModeRequired
	ErrorKindInvalidCharacterClass
	ErrorKindCharacterClassRangeOutOfOrder
	ErrorKindInvalidCharacterClassRange
	ErrorKindQuantifierNumbersOutOfOrder

	// RegExp literal errors.
	ErrorKindUnterminatedLiteral
	ErrorKindUnknownFlag
	ErrorKindDuplicatedFlag
	ErrorKindInvalidUnicodeFlags
)

var errorKindNames = [...]string{
	ErrorKindTooManyCapturingGroups:             "TooManyCapturingGroups",
	ErrorKindDuplicatedGroupName:                "DuplicatedGroupName",
	ErrorKindCouldNotParseEntirePattern:         "CouldNotParseEntirePattern",
	ErrorKindLoneQuantifier:                     "LoneQuantifier",
	ErrorKindInvalidBracedQuantifier:            "InvalidBracedQuantifier",
	ErrorKindUnterminatedLookaroundAssertion:    "UnterminatedLookaroundAssertion",
	ErrorKindUnterminatedCapturingGroup:         "UnterminatedCapturingGroup",
	ErrorKindUnterminatedIgnoreGroup:            "UnterminatedIgnoreGroup",
	ErrorKindUnterminatedCharacterClass:         "UnterminatedCharacterClass",
	ErrorKindUnterminatedClassStringDisjunction: "UnterminatedClassStringDisjunction",
	ErrorKindUnterminatedUnicodePropertyEscape:  "UnterminatedUnicodePropertyEscape",
	ErrorKindMissingCapturingGroupName:          "MissingCapturingGroupName",
	ErrorKindInvalidModifiers:                   "InvalidModifiers",
	ErrorKindInvalidAtomEscape:                  "InvalidAtomEscape",
	ErrorKindInvalidEscape:                      "InvalidEscape",
	ErrorKindInvalidClassEscape:                 "InvalidClassEscape",
	ErrorKindInvalidHexadecimalEscape:           "InvalidHexadecimalEscape",
	ErrorKindInvalidUnicodeEscapeSequence:       "InvalidUnicodeEscapeSequence",
	ErrorKindInvalidSurrogatePair:               "InvalidSurrogatePair",
	ErrorKindInvalidUnicodePropertyName:         "InvalidUnicodePropertyName",
	ErrorKindInvalidClassSetOperation:           "InvalidClassSetOperation",
	ErrorKindInvalidIndexedReference:            "InvalidIndexedReference",
	ErrorKindInvalidNamedReference:              "InvalidNamedReference",
	ErrorKindEmptyGroupSpecifiersThatMatch:      "EmptyGroupSpecifiersThatMatch",
	ErrorKindUnicodeSetsModeRequired:            "UnicodeSetsModeRequired",
	ErrorKindInvalidCharacterClass:              "InvalidCharacterClass",
	ErrorKindCharacterClassRangeOutOfOrder:      "CharacterClassRangeOutOfOrder",
	ErrorKindInvalidCharacterClassRange:         "InvalidCharacterClassRange",
	ErrorKindQuantifierNumbersOutOfOrder:        "QuantifierNumbersOutOfOrder",
	ErrorKindUnterminatedLiteral:                "UnterminatedLiteral",
	ErrorKindUnknownFlag:                        "UnknownFlag",
	ErrorKindDuplicatedFlag:                     "DuplicatedFlag",
	ErrorKindInvalidUnicodeFlags:                "InvalidUnicodeFlags",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "ErrorKind(?)"
}

// SyntaxError is returned for every pattern that is not a valid
// ECMAScript regular expression. Labels holds at least one span pointing at
// the offending source text.
type SyntaxError struct {
	Kind    ErrorKind
	Message string
	Labels  []Span
}

func (e *SyntaxError) Error() string {
	return e.Message
}

var _ error = (*SyntaxError)(nil)

func newSyntaxError(kind ErrorKind, message string, labels ...Span) *SyntaxError {
	return &SyntaxError{Kind: kind, Message: message, Labels: labels}
}
