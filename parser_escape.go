package ecmaregex

import "strings"

// AtomEscape[UnicodeMode, NamedCaptureGroups] ::
//
//	[+UnicodeMode] DecimalEscape
//	[~UnicodeMode] DecimalEscape but only if the CapturingGroupNumber of DecimalEscape is ≤ CountLeftCapturingParensWithin(the Pattern)
//	CharacterClassEscape[?UnicodeMode]
//	CharacterEscape[?UnicodeMode, ?NamedCaptureGroups]
//	[+NamedCaptureGroups] k GroupName[?UnicodeMode]
//
// The cursor is right after the backslash at start. A nil term with a nil
// error means that nothing matched and the cursor is unchanged.
func (p *Parser) parseAtomEscape(start int) (Term, error) {
	checkpoint := p.r.checkpoint()

	if isNonZeroDigit(p.r.peek()) {
		index, _ := p.consumeDecimalDigits()
		if p.state.unicodeMode && index > p.state.numOfCapturingGroups {
			return nil, newSyntaxError(
				ErrorKindInvalidIndexedReference,
				"invalid indexed reference",
				p.spans.create(start, p.r.offset()),
			)
		}
		if index <= p.state.numOfCapturingGroups {
			return &IndexedReference{
				Span:  p.spans.create(start, p.r.offset()),
				Index: index,
			}, nil
		}
		p.r.rewind(checkpoint)
	}

	if escape := p.parseCharacterClassEscape(start); escape != nil {
		return escape, nil
	}

	if p.state.unicodeMode {
		escape, err := p.parseUnicodePropertyEscape(start)
		if err != nil {
			return nil, err
		}
		if escape != nil {
			return escape, nil
		}
	}

	char, err := p.parseCharacterEscape(start)
	if err != nil {
		return nil, err
	}
	if char != nil {
		return char, nil
	}

	if p.state.namedCaptureGroups && p.r.eat('k') {
		name, ok, err := p.consumeGroupName()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newSyntaxError(
				ErrorKindInvalidNamedReference,
				"invalid named reference",
				p.spans.create(start, p.r.offset()),
			)
		}
		if _, found := p.state.foundGroupNames[name]; !found {
			return nil, newSyntaxError(
				ErrorKindEmptyGroupSpecifiersThatMatch,
				"group specified by named reference not found",
				p.spans.create(start, p.r.offset()),
			)
		}
		return &NamedReference{
			Span: p.spans.create(start, p.r.offset()),
			Name: name,
		}, nil
	}

	p.r.rewind(checkpoint)
	return nil, nil
}

// CharacterClassEscape :: one of d D s S w W
func (p *Parser) parseCharacterClassEscape(start int) *CharacterClassEscape {
	var kind CharacterClassEscapeKind
	switch p.r.peek() {
	case 'd':
		kind = CharacterClassEscapeKindD
	case 'D':
		kind = CharacterClassEscapeKindNegativeD
	case 's':
		kind = CharacterClassEscapeKindS
	case 'S':
		kind = CharacterClassEscapeKindNegativeS
	case 'w':
		kind = CharacterClassEscapeKindW
	case 'W':
		kind = CharacterClassEscapeKindNegativeW
	default:
		return nil
	}
	p.r.advance()
	return &CharacterClassEscape{
		Span: p.spans.create(start, p.r.offset()),
		Kind: kind,
	}
}

// CharacterClassEscape[UnicodeMode] ::
//
//	[+UnicodeMode] p{ UnicodePropertyValueExpression }
//	[+UnicodeMode] P{ UnicodePropertyValueExpression }
func (p *Parser) parseUnicodePropertyEscape(start int) (*UnicodePropertyEscape, error) {
	var negative bool
	switch {
	case p.r.eat('p'):
	case p.r.eat('P'):
		negative = true
	default:
		return nil, nil
	}

	if !p.r.eat('{') {
		return nil, newSyntaxError(
			ErrorKindInvalidUnicodePropertyName,
			"invalid unicode property escape",
			p.spans.create(start, p.r.offset()),
		)
	}
	name, value, ofStrings, err := p.consumeUnicodePropertyValueExpression()
	if err != nil {
		return nil, err
	}
	if negative && ofStrings {
		return nil, newSyntaxError(
			ErrorKindInvalidUnicodePropertyName,
			"invalid property name, negative set cannot contain strings",
			p.spans.create(start, p.r.offset()),
		)
	}
	if !p.r.eat('}') {
		return nil, newSyntaxError(
			ErrorKindUnterminatedUnicodePropertyEscape,
			"unterminated unicode property escape",
			p.spans.create(start, p.r.offset()),
		)
	}
	return &UnicodePropertyEscape{
		Span:     p.spans.create(start, p.r.offset()),
		Negative: negative,
		Strings:  ofStrings,
		Name:     name,
		Value:    value,
	}, nil
}

// UnicodePropertyValueExpression ::
//
//	UnicodePropertyName = UnicodePropertyValue
//	LoneUnicodePropertyNameOrValue
func (p *Parser) consumeUnicodePropertyValueExpression() (name, value string, ofStrings bool, err error) {
	start := p.r.offset()
	checkpoint := p.r.checkpoint()

	name = p.consumeWhile(isUnicodePropertyNameCharacter)
	if name != "" && p.r.eat('=') {
		value = p.consumeWhile(isUnicodePropertyValueCharacter)
		if value != "" && isValidUnicodeProperty(name, value) {
			return name, value, false, nil
		}
		return "", "", false, newSyntaxError(
			ErrorKindInvalidUnicodePropertyName,
			"invalid unicode property name or value",
			p.spans.create(start, p.r.offset()),
		)
	}
	p.r.rewind(checkpoint)

	nameOrValue := p.consumeWhile(isUnicodePropertyValueCharacter)
	switch {
	case nameOrValue == "":
	case isValidLoneUnicodePropertyOfStrings(nameOrValue):
		if !p.state.unicodeSetsMode {
			return "", "", false, newSyntaxError(
				ErrorKindUnicodeSetsModeRequired,
				"unicode sets mode is required for binary property of strings",
				p.spans.create(start, p.r.offset()),
			)
		}
		return nameOrValue, "", true, nil
	case generalCategoryValues.has(nameOrValue):
		return "General_Category", nameOrValue, false, nil
	case isValidLoneUnicodeProperty(nameOrValue):
		return nameOrValue, "", false, nil
	}
	return "", "", false, newSyntaxError(
		ErrorKindInvalidUnicodePropertyName,
		"invalid unicode property name",
		p.spans.create(start, p.r.offset()),
	)
}

func isUnicodePropertyNameCharacter(c rune) bool {
	return isASCIILetter(c) || c == '_'
}

func isUnicodePropertyValueCharacter(c rune) bool {
	return isASCIIWordChar(c)
}

func (p *Parser) consumeWhile(pred func(rune) bool) string {
	var sb strings.Builder
	for c := p.r.peek(); c != eof && pred(c); c = p.r.peek() {
		sb.WriteRune(c)
		p.r.advance()
	}
	return sb.String()
}

// CharacterEscape[UnicodeMode, NamedCaptureGroups] ::
//
//	ControlEscape
//	c AsciiLetter
//	0 [lookahead ∉ DecimalDigit]
//	HexEscapeSequence
//	RegExpUnicodeEscapeSequence[?UnicodeMode]
//	[~UnicodeMode] LegacyOctalEscapeSequence
//	IdentityEscape[?UnicodeMode, ?NamedCaptureGroups]
//
// The cursor is right after the backslash at start.
func (p *Parser) parseCharacterEscape(start int) (*Character, error) {
	checkpoint := p.r.checkpoint()
	char := func(kind CharacterKind, value rune) *Character {
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  kind,
			Value: value,
		}
	}

	if c, ok := mapControlEscape(p.r.peek()); ok {
		p.r.advance()
		return char(CharacterKindSingleEscape, c), nil
	}

	if p.r.eat('c') {
		if c, ok := mapCASCIILetter(p.r.peek()); ok {
			p.r.advance()
			return char(CharacterKindControlLetter, c), nil
		}
		p.r.rewind(checkpoint)
	}

	if p.r.peek() == '0' && !isDecimalDigit(p.r.peek2()) {
		p.r.advance()
		return char(CharacterKindNull, 0), nil
	}

	if p.r.eat('x') {
		if c, ok := p.consumeFixedHexDigits(2); ok {
			return char(CharacterKindHexadecimalEscape, c), nil
		}
		if p.state.unicodeMode {
			return nil, newSyntaxError(
				ErrorKindInvalidHexadecimalEscape,
				"invalid hexadecimal escape",
				p.spans.create(start, p.r.offset()),
			)
		}
		p.r.rewind(checkpoint)
	}

	c, ok, err := p.parseUnicodeEscapeSequence(start, p.state.unicodeMode)
	if err != nil {
		return nil, err
	}
	if ok {
		return char(CharacterKindUnicodeEscape, c), nil
	}

	if !p.state.unicodeMode {
		if c, digits := p.consumeLegacyOctalEscapeSequence(); digits > 0 {
			return char(CharacterKindOctal1+CharacterKind(digits-1), c), nil
		}
	}

	if c := p.r.peek(); p.isIdentityEscape(c) {
		p.r.advance()
		return char(CharacterKindIdentifier, c), nil
	}

	p.r.rewind(checkpoint)
	return nil, nil
}

// IdentityEscape[UnicodeMode, NamedCaptureGroups] ::
//
//	[+UnicodeMode] SyntaxCharacter
//	[+UnicodeMode] /
//	[~UnicodeMode] SourceCharacterIdentityEscape[?NamedCaptureGroups]
func (p *Parser) isIdentityEscape(c rune) bool {
	switch {
	case c == eof:
		return false
	case p.state.unicodeMode:
		return isSyntaxCharacter(c) || c == '/'
	case p.state.namedCaptureGroups:
		return c != 'c' && c != 'k'
	}
	return c != 'c'
}

// LegacyOctalEscapeSequence ::
//
//	0 [lookahead ∈ { 8, 9 }]
//	NonZeroOctalDigit [lookahead ∉ OctalDigit]
//	ZeroToThree OctalDigit [lookahead ∉ OctalDigit]
//	FourToSeven OctalDigit
//	ZeroToThree OctalDigit OctalDigit
//
// It returns the value and the number of consumed digits.
func (p *Parser) consumeLegacyOctalEscapeSequence() (rune, int) {
	first := p.r.peek()
	if !isOctalDigit(first) {
		return 0, 0
	}
	p.r.advance()
	value := first - '0'
	if !isOctalDigit(p.r.peek()) {
		return value, 1
	}
	value = value*8 + p.r.peek() - '0'
	p.r.advance()
	if first > '3' || !isOctalDigit(p.r.peek()) {
		return value, 2
	}
	value = value*8 + p.r.peek() - '0'
	p.r.advance()
	return value, 3
}

// RegExpUnicodeEscapeSequence[UnicodeMode] ::
//
//	[+UnicodeMode] u HexLeadSurrogate \u HexTrailSurrogate
//	[+UnicodeMode] u HexLeadSurrogate
//	[+UnicodeMode] u HexTrailSurrogate
//	[+UnicodeMode] u HexNonSurrogate
//	[~UnicodeMode] u Hex4Digits
//	[+UnicodeMode] u{ CodePoint }
//
// The cursor is right after the backslash at start. A malformed sequence is
// an error in Unicode mode, otherwise the cursor is rewound.
func (p *Parser) parseUnicodeEscapeSequence(start int, unicodeMode bool) (rune, bool, error) {
	checkpoint := p.r.checkpoint()
	if !p.r.eat('u') {
		return 0, false, nil
	}

	if unicodeMode {
		afterU := p.r.checkpoint()
		if lead, ok := p.consumeFixedHexDigits(4); ok {
			if isLeadSurrogate(lead) {
				trailCheckpoint := p.r.checkpoint()
				if p.r.eat2('\\', 'u') {
					if trail, ok := p.consumeFixedHexDigits(4); ok && isTrailSurrogate(trail) {
						return combineSurrogatePair(lead, trail), true, nil
					}
				}
				p.r.rewind(trailCheckpoint)
			}
			return lead, true, nil
		}
		p.r.rewind(afterU)

		if p.r.eat('{') {
			if c, ok := p.consumeHexDigits(); ok && isValidUnicode(c) && p.r.eat('}') {
				return c, true, nil
			}
		}
	} else if c, ok := p.consumeFixedHexDigits(4); ok {
		return c, true, nil
	}

	if p.state.unicodeMode {
		return 0, false, newSyntaxError(
			ErrorKindInvalidUnicodeEscapeSequence,
			"invalid unicode escape sequence",
			p.spans.create(start, p.r.offset()),
		)
	}
	p.r.rewind(checkpoint)
	return 0, false, nil
}

func (p *Parser) consumeFixedHexDigits(n int) (rune, bool) {
	checkpoint := p.r.checkpoint()
	var value rune
	for i := 0; i < n; i++ {
		c := p.r.peek()
		if !isHexDigit(c) {
			p.r.rewind(checkpoint)
			return 0, false
		}
		value = value<<4 | parseHexDigit(c)
		p.r.advance()
	}
	return value, true
}

// consumeHexDigits stops growing the value once it exceeds the Unicode
// range, so overlong code points stay invalid.
func (p *Parser) consumeHexDigits() (rune, bool) {
	if !isHexDigit(p.r.peek()) {
		return 0, false
	}
	var value rune
	for c := p.r.peek(); isHexDigit(c); c = p.r.peek() {
		if value <= 0x10ffff {
			value = value<<4 | parseHexDigit(c)
		}
		p.r.advance()
	}
	return value, true
}

// GroupName[UnicodeMode] ::
//
//	< RegExpIdentifierName[?UnicodeMode] >
//
// It reports false, with the cursor unchanged, if there is no well-formed
// group name at the cursor.
func (p *Parser) consumeGroupName() (string, bool, error) {
	checkpoint := p.r.checkpoint()
	if !p.r.eat('<') {
		return "", false, nil
	}
	name, ok, err := p.consumeRegExpIdentifierName()
	if err != nil {
		return "", false, err
	}
	if ok && p.r.eat('>') {
		return name, true, nil
	}
	p.r.rewind(checkpoint)
	return "", false, nil
}

// RegExpIdentifierName[UnicodeMode] ::
//
//	RegExpIdentifierStart[?UnicodeMode]
//	RegExpIdentifierName[?UnicodeMode] RegExpIdentifierPart[?UnicodeMode]
func (p *Parser) consumeRegExpIdentifierName() (string, bool, error) {
	c, ok, err := p.consumeRegExpIdentifierChar(true)
	if err != nil || !ok {
		return "", false, err
	}
	var sb strings.Builder
	sb.WriteRune(c)
	for {
		c, ok, err := p.consumeRegExpIdentifierChar(false)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return sb.String(), true, nil
		}
		sb.WriteRune(c)
	}
}

// RegExpIdentifierStart[UnicodeMode] ::
//
//	IdentifierStartChar
//	\ RegExpUnicodeEscapeSequence[+UnicodeMode]
//	[~UnicodeMode] UnicodeLeadSurrogate UnicodeTrailSurrogate
//
// RegExpIdentifierPart[UnicodeMode] ::
//
//	IdentifierPartChar
//	\ RegExpUnicodeEscapeSequence[+UnicodeMode]
//	[~UnicodeMode] UnicodeLeadSurrogate UnicodeTrailSurrogate
func (p *Parser) consumeRegExpIdentifierChar(isStart bool) (rune, bool, error) {
	start := p.r.offset()
	isChar, isUnicodeID := isIdentifierPartChar, isUnicodeIDContinue
	if isStart {
		isChar, isUnicodeID = isIdentifierStartChar, isUnicodeIDStart
	}

	if c := p.r.peek(); c != eof && isChar(c) {
		p.r.advance()
		return c, true, nil
	}

	if p.r.eat('\\') {
		c, ok, err := p.parseUnicodeEscapeSequence(start, true)
		if err != nil {
			return 0, false, err
		}
		if !ok || !isChar(c) {
			return 0, false, newSyntaxError(
				ErrorKindInvalidUnicodeEscapeSequence,
				"invalid unicode escape sequence in group name",
				p.spans.create(start, p.r.offset()),
			)
		}
		return c, true, nil
	}

	if !p.state.unicodeMode {
		lead, trail := p.r.peek(), p.r.peek2()
		if isLeadSurrogate(lead) && isTrailSurrogate(trail) {
			p.r.advance()
			p.r.advance()
			c := combineSurrogatePair(lead, trail)
			if !isUnicodeID(c) {
				return 0, false, newSyntaxError(
					ErrorKindInvalidSurrogatePair,
					"invalid surrogate pair in group name",
					p.spans.create(start, p.r.offset()),
				)
			}
			return c, true, nil
		}
	}
	return 0, false, nil
}
