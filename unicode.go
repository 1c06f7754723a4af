package ecmaregex

import (
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/rangetable"
)

const (
	zwnj = 0x200c
	zwj  = 0x200d
)

// ID_Start = L + Nl + Other_ID_Start - Pattern_Syntax - Pattern_White_Space
var idStart = rangetable.Merge(
	unicode.L,
	unicode.Nl,
	unicode.Other_ID_Start,
)

// ID_Continue = ID_Start + Mn + Mc + Nd + Pc + Other_ID_Continue - Pattern_Syntax - Pattern_White_Space
var idContinue = rangetable.Merge(
	idStart,
	unicode.Mn,
	unicode.Mc,
	unicode.Nd,
	unicode.Pc,
	unicode.Other_ID_Continue,
)

func lowerASCII(c rune) rune {
	return c | ('a' - 'A')
}

func isSyntaxCharacter(c rune) bool {
	switch c {
	case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
		return true
	}
	return false
}

func isDecimalDigit(c rune) bool {
	return uint32(c-'0') <= 9
}

func isNonZeroDigit(c rune) bool {
	return uint32(c-'1') <= 8
}

func isOctalDigit(c rune) bool {
	return uint32(c-'0') <= 7
}

func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || uint32(lowerASCII(c)-'a') <= 'f'-'a'
}

func isASCIILetter(c rune) bool {
	return uint32(lowerASCII(c)-'a') <= 'z'-'a'
}

func isASCIIWordChar(c rune) bool {
	return isDecimalDigit(c) || isASCIILetter(c) || c == '_'
}

func parseHexDigit(c rune) rune {
	return (c & 0b1111) + (c>>6)*9
}

func isUnicodeIDStart(c rune) bool {
	if c < 0 {
		return false
	}
	return unicode.Is(idStart, c) && !unicode.In(c, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

func isUnicodeIDContinue(c rune) bool {
	if c < 0 {
		return false
	}
	return unicode.Is(idContinue, c) && !unicode.In(c, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

func isIdentifierStartChar(c rune) bool {
	if c < 0x80 {
		return isASCIILetter(c) || c == '$' || c == '_'
	}
	return isUnicodeIDStart(c)
}

func isIdentifierPartChar(c rune) bool {
	if c < 0x80 {
		return isASCIIWordChar(c) || c == '$'
	}
	return c == zwnj || c == zwj || isUnicodeIDContinue(c)
}

// Maps the letter of a ControlEscape (\f \n \r \t \v) to its code point.
func mapControlEscape(c rune) (rune, bool) {
	switch c {
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	}
	return 0, false
}

// Maps the letter of \cX to its code point.
func mapCASCIILetter(c rune) (rune, bool) {
	if !isASCIILetter(c) {
		return 0, false
	}
	return c % 32, true
}

func isLeadSurrogate(c rune) bool {
	return (c >> 10) == (0xd800 >> 10)
}

func isTrailSurrogate(c rune) bool {
	return (c >> 10) == (0xdc00 >> 10)
}

func combineSurrogatePair(lead, trail rune) rune {
	return utf16.DecodeRune(lead, trail)
}

func isValidUnicode(c rune) bool {
	return c >= 0 && c <= unicode.MaxRune
}

func isClassSetSyntaxCharacter(c rune) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}', '/', '-', '\\', '|':
		return true
	}
	return false
}

func isClassSetReservedPunctuator(c rune) bool {
	switch c {
	case '&', '-', '!', '#', '%', ',', ':', ';', '<', '=', '>', '@', '`', '~':
		return true
	}
	return false
}

func isClassSetReservedDoublePunctuator(c1, c2 rune) bool {
	if c1 != c2 {
		return false
	}
	switch c1 {
	case '&', '!', '#', '$', '%', '*', '+', ',', '.', ':', ';', '<', '=', '>', '?', '@', '^', '`', '~':
		return true
	}
	return false
}
