package ecmaregex

import "math"

// Parser parses a single pattern. Every call to Parse starts from scratch,
// so a Parser may be reused, but not concurrently.
type Parser struct {
	source   string
	source16 []uint16
	isUtf16  bool
	opts     Options

	r     *reader
	state state
	spans spanFactory
}

// NewParser returns a parser for a UTF-8 encoded pattern.
func NewParser(source string, opts Options) *Parser {
	return &Parser{source: source, opts: opts}
}

// NewParserUTF16 returns a parser for a pattern expressed as UTF-16 code
// units.
func NewParserUTF16(source []uint16, opts Options) *Parser {
	return &Parser{source16: source, isUtf16: true, opts: opts}
}

// emptyPattern is parsed in place of an empty source, as RegExp("") does.
const emptyPattern = "(?:)"

// Parse returns the syntax tree of the pattern or a *SyntaxError.
func (p *Parser) Parse() (*Pattern, error) {
	p.reset()
	if err := p.initializeWithParsing(); err != nil {
		return nil, err
	}
	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	return pattern, nil
}

func (p *Parser) reset() {
	p.state = newState(p.opts.Flags)
	p.spans = spanFactory{offset: p.opts.SpanOffset}
	switch {
	case p.isUtf16 && len(p.source16) > 0:
		p.r = newReaderUTF16(p.source16, p.state.unicodeMode)
	case !p.isUtf16 && len(p.source) > 0:
		p.r = newReader(p.source, p.state.unicodeMode)
	default:
		p.r = newReader(emptyPattern, p.state.unicodeMode)
	}
}

func (p *Parser) parsePattern() (*Pattern, error) {
	start := p.r.offset()
	body, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if !p.r.atEnd() {
		return nil, newSyntaxError(
			ErrorKindCouldNotParseEntirePattern,
			"could not parse the entire pattern",
			p.spans.create(p.r.offset(), p.r.end),
		)
	}
	return &Pattern{
		Span: p.spans.create(start, p.r.offset()),
		Body: body,
	}, nil
}

// Disjunction ::
//
//	Alternative
//	Alternative | Disjunction
func (p *Parser) parseDisjunction() (*Disjunction, error) {
	start := p.r.offset()
	var body []*Alternative
	for {
		alt, err := p.parseAlternative()
		if err != nil {
			return nil, err
		}
		body = append(body, alt)
		if !p.r.eat('|') {
			break
		}
	}
	return &Disjunction{
		Span: p.spans.create(start, p.r.offset()),
		Body: body,
	}, nil
}

// Alternative ::
//
//	[empty]
//	Alternative Term
func (p *Parser) parseAlternative() (*Alternative, error) {
	start := p.r.offset()
	var body []Term
	for !p.r.atEnd() {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if term == nil {
			break
		}
		body = append(body, term)
	}
	return &Alternative{
		Span: p.spans.create(start, p.r.offset()),
		Body: body,
	}, nil
}

// Term ::
//
//	[+UnicodeMode] Assertion
//	[+UnicodeMode] Atom Quantifier
//	[+UnicodeMode] Atom
//	[~UnicodeMode] QuantifiableAssertion Quantifier
//	[~UnicodeMode] Assertion
//	[~UnicodeMode] ExtendedAtom Quantifier
//	[~UnicodeMode] ExtendedAtom
//
// A nil term with a nil error means that no term starts at the cursor.
func (p *Parser) parseTerm() (Term, error) {
	start := p.r.offset()

	assertion, err := p.parseAssertion()
	if err != nil {
		return nil, err
	}
	if assertion != nil {
		if !p.state.unicodeMode {
			if la, ok := assertion.(*LookAroundAssertion); ok &&
				(la.Kind == LookAroundAssertionKindLookahead || la.Kind == LookAroundAssertionKindNegativeLookahead) {
				return p.parseQuantified(start, assertion)
			}
		}
		return assertion, nil
	}

	var atom Term
	expected := "Atom"
	if p.state.unicodeMode {
		atom, err = p.parseAtom()
	} else {
		atom, err = p.parseExtendedAtom()
		expected = "ExtendedAtom"
	}
	if err != nil {
		return nil, err
	}
	if atom != nil {
		return p.parseQuantified(start, atom)
	}

	q, err := p.consumeQuantifier()
	if err != nil {
		return nil, err
	}
	if q != nil {
		return nil, newSyntaxError(
			ErrorKindLoneQuantifier,
			"lone quantifier found, expected with "+expected,
			p.spans.create(q.start, q.end),
		)
	}
	return nil, nil
}

// parseQuantified wraps body into a Quantifier if one follows.
func (p *Parser) parseQuantified(start int, body Term) (Term, error) {
	q, err := p.consumeQuantifier()
	if err != nil {
		return nil, err
	}
	if q == nil {
		return body, nil
	}
	return &Quantifier{
		Span:   p.spans.create(start, q.end),
		Min:    q.min,
		Max:    q.max,
		Greedy: q.greedy,
		Body:   body,
	}, nil
}

// Assertion ::
//
//	^
//	$
//	\b
//	\B
//	(?= Disjunction )
//	(?! Disjunction )
//	(?<= Disjunction )
//	(?<! Disjunction )
func (p *Parser) parseAssertion() (Term, error) {
	start := p.r.offset()

	var boundary BoundaryAssertionKind
	switch {
	case p.r.eat('^'):
		boundary = BoundaryAssertionKindStart
	case p.r.eat('$'):
		boundary = BoundaryAssertionKindEnd
	case p.r.eat2('\\', 'b'):
		boundary = BoundaryAssertionKindBoundary
	case p.r.eat2('\\', 'B'):
		boundary = BoundaryAssertionKindNegativeBoundary
	default:
		return p.parseLookAroundAssertion()
	}
	return &BoundaryAssertion{
		Span: p.spans.create(start, p.r.offset()),
		Kind: boundary,
	}, nil
}

func (p *Parser) parseLookAroundAssertion() (Term, error) {
	start := p.r.offset()

	var kind LookAroundAssertionKind
	switch {
	case p.r.eat3('(', '?', '='):
		kind = LookAroundAssertionKindLookahead
	case p.r.eat3('(', '?', '!'):
		kind = LookAroundAssertionKindNegativeLookahead
	case p.r.eat4('(', '?', '<', '='):
		kind = LookAroundAssertionKindLookbehind
	case p.r.eat4('(', '?', '<', '!'):
		kind = LookAroundAssertionKindNegativeLookbehind
	default:
		return nil, nil
	}
	openEnd := p.r.offset()

	body, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if !p.r.eat(')') {
		return nil, newSyntaxError(
			ErrorKindUnterminatedLookaroundAssertion,
			"unterminated lookaround assertion",
			p.spans.create(start, openEnd),
		)
	}
	return &LookAroundAssertion{
		Span: p.spans.create(start, p.r.offset()),
		Kind: kind,
		Body: body,
	}, nil
}

// Atom[UnicodeMode, UnicodeSetsMode, NamedCaptureGroups] ::
//
//	PatternCharacter
//	.
//	\ AtomEscape[?UnicodeMode, ?NamedCaptureGroups]
//	CharacterClass[?UnicodeMode, ?UnicodeSetsMode]
//	( GroupSpecifier[?UnicodeMode]opt Disjunction )
//	(? RegularExpressionModifiers : Disjunction )
func (p *Parser) parseAtom() (Term, error) {
	start := p.r.offset()

	if c := p.r.peek(); c != eof && !isSyntaxCharacter(c) {
		p.r.advance()
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindSymbol,
			Value: c,
		}, nil
	}
	if p.r.eat('.') {
		return &Dot{Span: p.spans.create(start, p.r.offset())}, nil
	}
	if p.r.eat('\\') {
		atom, err := p.parseAtomEscape(start)
		if err != nil {
			return nil, err
		}
		if atom == nil {
			return nil, newSyntaxError(
				ErrorKindInvalidAtomEscape,
				"invalid atom escape",
				p.spans.create(start, p.r.offset()),
			)
		}
		return atom, nil
	}
	return p.parseGroupOrClass()
}

// ExtendedAtom[NamedCaptureGroups] ::
//
//	.
//	\ AtomEscape[~UnicodeMode, ?NamedCaptureGroups]
//	\ [lookahead = c]
//	CharacterClass[~UnicodeMode, ~UnicodeSetsMode]
//	( GroupSpecifier[~UnicodeMode]opt Disjunction )
//	(? RegularExpressionModifiers : Disjunction )
//	InvalidBracedQuantifier
//	ExtendedPatternCharacter
func (p *Parser) parseExtendedAtom() (Term, error) {
	start := p.r.offset()

	if p.r.eat('.') {
		return &Dot{Span: p.spans.create(start, p.r.offset())}, nil
	}
	if p.r.eat('\\') {
		atom, err := p.parseAtomEscape(start)
		if err != nil {
			return nil, err
		}
		if atom != nil {
			return atom, nil
		}
		if p.r.peek() == 'c' {
			return &Character{
				Span:  p.spans.create(start, p.r.offset()),
				Kind:  CharacterKindSymbol,
				Value: '\\',
			}, nil
		}
		return nil, newSyntaxError(
			ErrorKindInvalidEscape,
			"invalid escape",
			p.spans.create(start, p.r.offset()),
		)
	}

	atom, err := p.parseGroupOrClass()
	if err != nil || atom != nil {
		return atom, err
	}

	if p.r.peek() == '{' {
		q, err := p.consumeQuantifier()
		if err != nil {
			return nil, err
		}
		if q != nil {
			return nil, newSyntaxError(
				ErrorKindInvalidBracedQuantifier,
				"invalid braced quantifier",
				p.spans.create(q.start, q.end),
			)
		}
	}

	// ExtendedPatternCharacter :: SourceCharacter but not one of ^ $ \ . * + ? ( ) [ |
	if c := p.r.peek(); c != eof && (!isSyntaxCharacter(c) || c == ']' || c == '{' || c == '}') {
		p.r.advance()
		return &Character{
			Span:  p.spans.create(start, p.r.offset()),
			Kind:  CharacterKindSymbol,
			Value: c,
		}, nil
	}
	return nil, nil
}

func (p *Parser) parseGroupOrClass() (Term, error) {
	class, err := p.parseCharacterClass()
	if err != nil {
		return nil, err
	}
	if class != nil {
		return class, nil
	}
	group, err := p.parseIgnoreGroup()
	if err != nil {
		return nil, err
	}
	if group != nil {
		return group, nil
	}
	capturing, err := p.parseCapturingGroup()
	if err != nil {
		return nil, err
	}
	if capturing != nil {
		return capturing, nil
	}
	return nil, nil
}

// (? RegularExpressionModifiers : Disjunction )
// (? RegularExpressionModifiers - RegularExpressionModifiers : Disjunction )
func (p *Parser) parseIgnoreGroup() (*IgnoreGroup, error) {
	start := p.r.offset()
	checkpoint := p.r.checkpoint()
	if !p.r.eat2('(', '?') {
		return nil, nil
	}

	modifiers, ok, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	if !ok {
		p.r.rewind(checkpoint)
		return nil, nil
	}
	openEnd := p.r.offset()

	body, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if !p.r.eat(')') {
		return nil, newSyntaxError(
			ErrorKindUnterminatedIgnoreGroup,
			"unterminated non-capturing group",
			p.spans.create(start, openEnd),
		)
	}
	return &IgnoreGroup{
		Span:      p.spans.create(start, p.r.offset()),
		Modifiers: modifiers,
		Body:      body,
	}, nil
}

func modifierFlag(c rune) (Flag, bool) {
	switch c {
	case 'i':
		return FlagIgnoreCase, true
	case 'm':
		return FlagMultiline, true
	case 's':
		return FlagDotAll, true
	}
	return 0, false
}

// parseModifiers parses the flags between "(?" and ":" including the colon.
// It reports false if the cursor is not at a modifier list.
func (p *Parser) parseModifiers() (*Modifiers, bool, error) {
	start := p.r.offset()

	repeated := false
	consumeFlags := func() Flag {
		var flags Flag
		for {
			f, ok := modifierFlag(p.r.peek())
			if !ok {
				return flags
			}
			if flags&f != 0 {
				repeated = true
			}
			flags |= f
			p.r.advance()
		}
	}
	enabling := consumeFlags()
	hasDash := p.r.eat('-')
	var disabling Flag
	if hasDash {
		disabling = consumeFlags()
	}
	end := p.r.offset()
	if !p.r.eat(':') {
		return nil, false, nil
	}
	if !hasDash && enabling == 0 {
		return nil, true, nil
	}

	span := p.spans.create(start, end)
	switch {
	case repeated:
		return nil, false, newSyntaxError(ErrorKindInvalidModifiers, "repeated flag in modifiers", span)
	case enabling&disabling != 0:
		return nil, false, newSyntaxError(ErrorKindInvalidModifiers, "flag is both enabled and disabled", span)
	case enabling == 0 && disabling == 0:
		return nil, false, newSyntaxError(ErrorKindInvalidModifiers, "empty modifiers", span)
	}
	return &Modifiers{
		Span:      span,
		Enabling:  enabling,
		Disabling: disabling,
	}, true, nil
}

// ( GroupSpecifier[?UnicodeMode]opt Disjunction )
func (p *Parser) parseCapturingGroup() (*CapturingGroup, error) {
	start := p.r.offset()
	if !p.r.eat('(') {
		return nil, nil
	}

	var name string
	if p.r.eat('?') {
		n, ok, err := p.consumeGroupName()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newSyntaxError(
				ErrorKindMissingCapturingGroupName,
				"missing or invalid capturing group name",
				p.spans.create(start, p.r.offset()),
			)
		}
		name = n
	}
	openEnd := p.r.offset()

	body, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if !p.r.eat(')') {
		return nil, newSyntaxError(
			ErrorKindUnterminatedCapturingGroup,
			"unterminated capturing group",
			p.spans.create(start, openEnd),
		)
	}
	return &CapturingGroup{
		Span: p.spans.create(start, p.r.offset()),
		Name: name,
		Body: body,
	}, nil
}

type quantifier struct {
	min, max   int
	greedy     bool
	start, end int
}

// Quantifier ::
//
//	QuantifierPrefix
//	QuantifierPrefix ?
//
// QuantifierPrefix ::
//
//	*
//	+
//	?
//	{ DecimalDigits }
//	{ DecimalDigits ,}
//	{ DecimalDigits , DecimalDigits }
//
// A malformed brace body is not an error, the cursor is rewound.
func (p *Parser) consumeQuantifier() (*quantifier, error) {
	q := quantifier{start: p.r.offset(), max: -1}
	switch {
	case p.r.eat('*'):
	case p.r.eat('+'):
		q.min = 1
	case p.r.eat('?'):
		q.max = 1
	case p.r.peek() == '{':
		checkpoint := p.r.checkpoint()
		p.r.advance()
		min, ok := p.consumeDecimalDigits()
		if !ok {
			p.r.rewind(checkpoint)
			return nil, nil
		}
		q.min, q.max = min, min
		if p.r.eat(',') {
			q.max = -1
			if max, ok := p.consumeDecimalDigits(); ok {
				q.max = max
			}
		}
		if !p.r.eat('}') {
			p.r.rewind(checkpoint)
			return nil, nil
		}
		if q.max != -1 && q.max < q.min {
			return nil, newSyntaxError(
				ErrorKindQuantifierNumbersOutOfOrder,
				"numbers out of order in quantifier",
				p.spans.create(q.start, p.r.offset()),
			)
		}
	default:
		return nil, nil
	}
	q.greedy = !p.r.eat('?')
	q.end = p.r.offset()
	return &q, nil
}

// consumeDecimalDigits saturates at math.MaxInt.
func (p *Parser) consumeDecimalDigits() (int, bool) {
	if !isDecimalDigit(p.r.peek()) {
		return 0, false
	}
	n := 0
	for c := p.r.peek(); isDecimalDigit(c); c = p.r.peek() {
		p.r.advance()
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
	}
	return n, true
}
