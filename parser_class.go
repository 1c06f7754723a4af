package ecmaregex

// CharacterClass[UnicodeMode, UnicodeSetsMode] ::
//
//	[ [lookahead ≠ ^] ClassContents[?UnicodeMode, ?UnicodeSetsMode] ]
//	[^ ClassContents[?UnicodeMode, ?UnicodeSetsMode] ]
func (p *Parser) parseCharacterClass() (*CharacterClass, error) {
	start := p.r.offset()
	if !p.r.eat('[') {
		return nil, nil
	}
	negative := p.r.eat('^')

	kind := CharacterClassContentsKindUnion
	var body []CharacterClassContents
	var err error
	if p.state.unicodeSetsMode {
		kind, body, err = p.parseClassSetExpression()
	} else {
		body, err = p.parseClassRanges()
	}
	if err != nil {
		return nil, err
	}

	strings := mayContainStrings(kind, body)
	if negative && strings {
		return nil, newSyntaxError(
			ErrorKindInvalidCharacterClass,
			"negated character class may contain strings",
			p.spans.create(start, p.r.offset()),
		)
	}
	if !p.r.eat(']') {
		return nil, newSyntaxError(
			ErrorKindUnterminatedCharacterClass,
			"unterminated character class",
			p.spans.create(start, p.r.offset()),
		)
	}
	return &CharacterClass{
		Span:     p.spans.create(start, p.r.offset()),
		Negative: negative,
		Strings:  strings,
		Kind:     kind,
		Body:     body,
	}, nil
}

// ClassContents[UnicodeMode, UnicodeSetsMode] ::
//
//	[empty]
//	[~UnicodeSetsMode] NonemptyClassRanges[?UnicodeMode]
func (p *Parser) parseClassRanges() ([]CharacterClassContents, error) {
	var body []CharacterClassContents
	for {
		start := p.r.offset()
		from, err := p.parseClassAtom()
		if err != nil {
			return nil, err
		}
		if from == nil {
			return body, nil
		}

		dashStart := p.r.offset()
		if !p.r.eat('-') {
			body = append(body, from)
			continue
		}
		dash := &Character{
			Span:  p.spans.create(dashStart, p.r.offset()),
			Kind:  CharacterKindSymbol,
			Value: '-',
		}

		to, err := p.parseClassAtom()
		if err != nil {
			return nil, err
		}
		if to == nil {
			body = append(body, from, dash)
			continue
		}

		min, minOk := from.(*Character)
		max, maxOk := to.(*Character)
		if minOk && maxOk {
			if max.Value < min.Value {
				return nil, newSyntaxError(
					ErrorKindCharacterClassRangeOutOfOrder,
					"character class range out of order",
					p.spans.create(start, p.r.offset()),
				)
			}
			body = append(body, &CharacterClassRange{
				Span: p.spans.create(start, p.r.offset()),
				Min:  min,
				Max:  max,
			})
			continue
		}
		if p.state.unicodeMode {
			return nil, newSyntaxError(
				ErrorKindInvalidCharacterClassRange,
				"invalid character class range",
				p.spans.create(start, p.r.offset()),
			)
		}
		body = append(body, from, dash, to)
	}
}

// ClassAtom[UnicodeMode] ::
//
//	-
//	ClassAtomNoDash[?UnicodeMode]
//
// ClassAtomNoDash[UnicodeMode, NamedCaptureGroups] ::
//
//	SourceCharacter but not one of \ or ] or -
//	\ ClassEscape[?UnicodeMode, ?NamedCaptureGroups]
//	\ [lookahead = c]
func (p *Parser) parseClassAtom() (CharacterClassContents, error) {
	start := p.r.offset()
	c := p.r.peek()
	if c == eof || c == ']' {
		return nil, nil
	}
	if c != '\\' {
		p.r.advance()
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindSymbol,
			Value: c,
		}, nil
	}

	p.r.advance()
	escape, err := p.parseClassEscape(start)
	if err != nil {
		return nil, err
	}
	if escape != nil {
		return escape, nil
	}
	if !p.state.unicodeMode && p.r.peek() == 'c' {
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindSymbol,
			Value: '\\',
		}, nil
	}
	return nil, newSyntaxError(
		ErrorKindInvalidClassEscape,
		"invalid class escape",
		p.spans.create(start, p.r.offset()),
	)
}

// ClassEscape[UnicodeMode, NamedCaptureGroups] ::
//
//	b
//	[+UnicodeMode] -
//	[~UnicodeMode] c ClassControlLetter
//	CharacterClassEscape[?UnicodeMode]
//	CharacterEscape[?UnicodeMode, ?NamedCaptureGroups]
//
// ClassControlLetter ::
//
//	DecimalDigit
//	_
func (p *Parser) parseClassEscape(start int) (CharacterClassContents, error) {
	if p.r.eat('b') {
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindSingleEscape,
			Value: '\b',
		}, nil
	}
	if p.state.unicodeMode && p.r.eat('-') {
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindIdentifier,
			Value: '-',
		}, nil
	}
	if !p.state.unicodeMode && p.r.peek() == 'c' {
		if c := p.r.peek2(); isDecimalDigit(c) || c == '_' {
			p.r.advance()
			p.r.advance()
			return &Character{
				Span:  p.spans.create(start, p.r.offset()),
				Kind:  CharacterKindControlLetter,
				Value: c % 32,
			}, nil
		}
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
	return nil, nil
}

// ClassSetExpression ::
//
//	ClassUnion
//	ClassIntersection
//	ClassSubtraction
func (p *Parser) parseClassSetExpression() (CharacterClassContentsKind, []CharacterClassContents, error) {
	if p.r.peek() == ']' {
		return CharacterClassContentsKindUnion, nil, nil
	}

	rng, err := p.parseClassSetRange()
	if err != nil {
		return 0, nil, err
	}
	if rng != nil {
		return p.parseClassSetUnion(rng)
	}

	operand, err := p.parseClassSetOperand()
	if err != nil {
		return 0, nil, err
	}
	if operand == nil {
		return 0, nil, newSyntaxError(
			ErrorKindInvalidClassSetOperation,
			"invalid character in class set expression",
			p.spans.create(p.r.offset(), p.r.offset()),
		)
	}
	switch {
	case p.r.peek() == '&' && p.r.peek2() == '&':
		return p.parseClassSetIntersection(operand)
	case p.r.peek() == '-' && p.r.peek2() == '-':
		return p.parseClassSetSubtraction(operand)
	}
	return p.parseClassSetUnion(operand)
}

// ClassUnion ::
//
//	ClassSetRange ClassUnion?
//	ClassSetOperand ClassUnion?
func (p *Parser) parseClassSetUnion(first CharacterClassContents) (CharacterClassContentsKind, []CharacterClassContents, error) {
	body := []CharacterClassContents{first}
	for {
		rng, err := p.parseClassSetRange()
		if err != nil {
			return 0, nil, err
		}
		if rng != nil {
			body = append(body, rng)
			continue
		}
		operand, err := p.parseClassSetOperand()
		if err != nil {
			return 0, nil, err
		}
		if operand != nil {
			body = append(body, operand)
			continue
		}
		break
	}
	if c1, c2 := p.r.peek(), p.r.peek2(); (c1 == '&' && c2 == '&') || (c1 == '-' && c2 == '-') {
		return 0, nil, newSyntaxError(
			ErrorKindInvalidClassSetOperation,
			"class set operators cannot be used within a union",
			p.spans.create(p.r.offset(), p.r.offset()+2),
		)
	}
	return CharacterClassContentsKindUnion, body, nil
}

// ClassIntersection ::
//
//	ClassSetOperand && [lookahead ≠ &] ClassSetOperand
//	ClassIntersection && [lookahead ≠ &] ClassSetOperand
func (p *Parser) parseClassSetIntersection(first CharacterClassContents) (CharacterClassContentsKind, []CharacterClassContents, error) {
	body := []CharacterClassContents{first}
	for p.r.peek() != ']' {
		start := p.r.offset()
		if p.r.eat2('&', '&') {
			if p.r.peek() == '&' {
				return 0, nil, newSyntaxError(
					ErrorKindInvalidClassSetOperation,
					"unexpected & in class intersection",
					p.spans.create(start, p.r.offset()+1),
				)
			}
			operand, err := p.parseClassSetOperand()
			if err != nil {
				return 0, nil, err
			}
			if operand != nil {
				body = append(body, operand)
				continue
			}
		}
		return 0, nil, newSyntaxError(
			ErrorKindInvalidClassSetOperation,
			"invalid character in class intersection",
			p.spans.create(p.r.offset(), p.r.offset()),
		)
	}
	return CharacterClassContentsKindIntersection, body, nil
}

// ClassSubtraction ::
//
//	ClassSetOperand -- ClassSetOperand
//	ClassSubtraction -- ClassSetOperand
func (p *Parser) parseClassSetSubtraction(first CharacterClassContents) (CharacterClassContentsKind, []CharacterClassContents, error) {
	body := []CharacterClassContents{first}
	for p.r.peek() != ']' {
		if p.r.eat2('-', '-') {
			operand, err := p.parseClassSetOperand()
			if err != nil {
				return 0, nil, err
			}
			if operand != nil {
				body = append(body, operand)
				continue
			}
		}
		return 0, nil, newSyntaxError(
			ErrorKindInvalidClassSetOperation,
			"invalid character in class subtraction",
			p.spans.create(p.r.offset(), p.r.offset()),
		)
	}
	return CharacterClassContentsKindSubtraction, body, nil
}

// ClassSetRange ::
//
//	ClassSetCharacter - ClassSetCharacter
//
// The cursor is rewound unless a whole range was parsed.
func (p *Parser) parseClassSetRange() (*CharacterClassRange, error) {
	start := p.r.offset()
	checkpoint := p.r.checkpoint()

	min, err := p.parseClassSetCharacter()
	if err != nil {
		return nil, err
	}
	if min != nil && p.r.eat('-') {
		max, err := p.parseClassSetCharacter()
		if err != nil {
			return nil, err
		}
		if max != nil {
			if max.Value < min.Value {
				return nil, newSyntaxError(
					ErrorKindCharacterClassRangeOutOfOrder,
					"character class range out of order",
					p.spans.create(start, p.r.offset()),
				)
			}
			return &CharacterClassRange{
				Span: p.spans.create(start, p.r.offset()),
				Min:  min,
				Max:  max,
			}, nil
		}
	}
	p.r.rewind(checkpoint)
	return nil, nil
}

// ClassSetOperand ::
//
//	NestedClass
//	ClassStringDisjunction
//	ClassSetCharacter
//
// NestedClass ::
//
//	[ [lookahead ≠ ^] ClassContents[+UnicodeMode, +UnicodeSetsMode] ]
//	[^ ClassContents[+UnicodeMode, +UnicodeSetsMode] ]
//	\ CharacterClassEscape[+UnicodeMode]
func (p *Parser) parseClassSetOperand() (CharacterClassContents, error) {
	start := p.r.offset()

	class, err := p.parseCharacterClass()
	if err != nil {
		return nil, err
	}
	if class != nil {
		return class, nil
	}

	checkpoint := p.r.checkpoint()
	if p.r.eat('\\') {
		if escape := p.parseCharacterClassEscape(start); escape != nil {
			return escape, nil
		}
		escape, err := p.parseUnicodePropertyEscape(start)
		if err != nil {
			return nil, err
		}
		if escape != nil {
			return escape, nil
		}
		p.r.rewind(checkpoint)
	}

	disjunction, err := p.parseClassStringDisjunction()
	if err != nil {
		return nil, err
	}
	if disjunction != nil {
		return disjunction, nil
	}

	char, err := p.parseClassSetCharacter()
	if err != nil {
		return nil, err
	}
	if char != nil {
		return char, nil
	}
	return nil, nil
}

// ClassStringDisjunction ::
//
//	\q{ ClassStringDisjunctionContents }
//
// ClassStringDisjunctionContents ::
//
//	ClassString
//	ClassString | ClassStringDisjunctionContents
func (p *Parser) parseClassStringDisjunction() (*ClassStringDisjunction, error) {
	start := p.r.offset()
	if !p.r.eat3('\\', 'q', '{') {
		return nil, nil
	}

	var body []*ClassString
	strings := false
	for {
		str, err := p.parseClassString()
		if err != nil {
			return nil, err
		}
		body = append(body, str)
		strings = strings || str.Strings
		if !p.r.eat('|') {
			break
		}
	}

	if !p.r.eat('}') {
		return nil, newSyntaxError(
			ErrorKindUnterminatedClassStringDisjunction,
			"unterminated class string disjunction",
			p.spans.create(start, p.r.offset()),
		)
	}
	return &ClassStringDisjunction{
		Span:    p.spans.create(start, p.r.offset()),
		Strings: strings,
		Body:    body,
	}, nil
}

// ClassString ::
//
//	[empty]
//	NonEmptyClassString
func (p *Parser) parseClassString() (*ClassString, error) {
	start := p.r.offset()
	var body []*Character
	for {
		char, err := p.parseClassSetCharacter()
		if err != nil {
			return nil, err
		}
		if char == nil {
			break
		}
		body = append(body, char)
	}
	return &ClassString{
		Span:    p.spans.create(start, p.r.offset()),
		Strings: len(body) != 1,
		Body:    body,
	}, nil
}

// ClassSetCharacter ::
//
//	[lookahead ∉ ClassSetReservedDoublePunctuator] SourceCharacter but not ClassSetSyntaxCharacter
//	\ CharacterEscape[+UnicodeMode]
//	\ ClassSetReservedPunctuator
//	\b
func (p *Parser) parseClassSetCharacter() (*Character, error) {
	start := p.r.offset()
	c := p.r.peek()
	if c == eof {
		return nil, nil
	}
	if !isClassSetReservedDoublePunctuator(c, p.r.peek2()) && !isClassSetSyntaxCharacter(c) {
		p.r.advance()
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindSymbol,
			Value: c,
		}, nil
	}

	checkpoint := p.r.checkpoint()
	if !p.r.eat('\\') {
		return nil, nil
	}
	char, err := p.parseCharacterEscape(start)
	if err != nil {
		return nil, err
	}
	if char != nil {
		return char, nil
	}
	if c := p.r.peek(); isClassSetReservedPunctuator(c) {
		p.r.advance()
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindIdentifier,
			Value: c,
		}, nil
	}
	if p.r.eat('b') {
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindSingleEscape,
			Value: '\b',
		}, nil
	}
	p.r.rewind(checkpoint)
	return nil, nil
}
