package ecmaregex

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

func TestBasic(t *testing.T) {
	r := newRunner(t)

	t.Run("Character", func(t *testing.T) {
		p := r.tree(`a`)
		assert.DeepEqual(t, p, &Pattern{
			Span: Span{0, 1},
			Body: &Disjunction{
				Span: Span{0, 1},
				Body: []*Alternative{{
					Span: Span{0, 1},
					Body: []Term{sym(0, 'a')},
				}},
			},
		})
	})

	t.Run("Disjunction", func(t *testing.T) {
		p := r.tree(`a|b|`)
		assert.Equal(t, len(p.Body.Body), 3)
		assert.DeepEqual(t, p.Body.Body[1], &Alternative{Span: Span{2, 3}, Body: []Term{sym(2, 'b')}})
		assert.DeepEqual(t, p.Body.Body[2], &Alternative{Span: Span{4, 4}})
	})

	t.Run("Dot", func(t *testing.T) {
		assert.DeepEqual(t, term(t, r.tree(`.`)), &Dot{Span: Span{0, 1}})
	})

	t.Run("Empty", func(t *testing.T) {
		p, err := Parse("", Options{})
		assert.NilError(t, err)
		assert.Equal(t, p.Span, Span{0, 4})
		group, ok := term(t, p).(*IgnoreGroup)
		assert.Assert(t, ok)
		assert.Assert(t, group.Modifiers == nil)

		p16, err := ParseUTF16(nil, Options{})
		assert.NilError(t, err)
		assert.DeepEqual(t, p, p16)
	})

	t.Run("SpanOffset", func(t *testing.T) {
		p, err := Parse(`a(b)`, Options{SpanOffset: 10})
		assert.NilError(t, err)
		checkSpans(t, `a(b)`, p, 10)
		group := terms(t, p)[1].(*CapturingGroup)
		assert.Equal(t, group.Span, Span{11, 14})
		assert.DeepEqual(t, group.Body.Body[0].Body[0], sym(12, 'b'))
	})

	t.Run("Reuse", func(t *testing.T) {
		parser := NewParser(`(a)\1`, Options{Flags: u})
		first, err := parser.Parse()
		assert.NilError(t, err)
		second, err := parser.Parse()
		assert.NilError(t, err)
		assert.DeepEqual(t, first, second)
	})

	r.ok(`abc|def`)
	r.ok(`||`)
	r.ok(`a(b|c)d`)
	r.ok(`^a$`)
	r.f(u).ok(`^a$`)
	r.f(v).ok(`^a$`)
	r.se(`a)`, ErrorKindCouldNotParseEntirePattern, Span{1, 2})
	r.f(u).se(`a)`, ErrorKindCouldNotParseEntirePattern, Span{1, 2})
	r.se(`)`, ErrorKindCouldNotParseEntirePattern)
	r.f(u).se(`]`, ErrorKindCouldNotParseEntirePattern)
	r.f(u).se(`}`, ErrorKindCouldNotParseEntirePattern)
	r.ok(`]`)
	r.ok(`}`)
}

func TestMustParse(t *testing.T) {
	p := MustParse(`a+`, Options{})
	assert.Equal(t, len(terms(t, p)), 1)

	defer func() {
		assert.Assert(t, recover() != nil, "did not panic on invalid pattern")
	}()
	MustParse(`*`, Options{})
}

func TestQuantifiers(t *testing.T) {
	r := newRunner(t)
	ru := r.f(u)

	cases := []struct {
		pattern  string
		min, max int
		greedy   bool
	}{
		{`a*`, 0, -1, true},
		{`a+`, 1, -1, true},
		{`a?`, 0, 1, true},
		{`a*?`, 0, -1, false},
		{`a+?`, 1, -1, false},
		{`a??`, 0, 1, false},
		{`a{3}`, 3, 3, true},
		{`a{3,}`, 3, -1, true},
		{`a{1,3}`, 1, 3, true},
		{`a{1,3}?`, 1, 3, false},
		{`a{0,0}`, 0, 0, true},
		{`a{99999999999999999999999}`, math.MaxInt, math.MaxInt, true},
		{`a{1,99999999999999999999999}`, 1, math.MaxInt, true},
	}
	for _, c := range cases {
		for _, rr := range []*runner{&r, ru} {
			q, ok := term(t, rr.tree(c.pattern)).(*Quantifier)
			assert.Assert(t, ok, c.pattern)
			assert.Equal(t, q.Span, Span{0, len(c.pattern)})
			assert.Equal(t, q.Min, c.min, c.pattern)
			assert.Equal(t, q.Max, c.max, c.pattern)
			assert.Equal(t, q.Greedy, c.greedy, c.pattern)
			assert.DeepEqual(t, q.Body, sym(0, 'a'))
		}
	}

	r.se(`a{3,1}`, ErrorKindQuantifierNumbersOutOfOrder, Span{1, 6})
	ru.se(`a{3,1}`, ErrorKindQuantifierNumbersOutOfOrder, Span{1, 6})
	r.se(`a**`, ErrorKindLoneQuantifier, Span{2, 3})
	ru.se(`a**`, ErrorKindLoneQuantifier, Span{2, 3})
	r.se(`*`, ErrorKindLoneQuantifier, Span{0, 1})
	r.se(`+a`, ErrorKindLoneQuantifier)
	r.se(`a|?`, ErrorKindLoneQuantifier)
	r.se(`^*`, ErrorKindLoneQuantifier)
	ru.se(`^*`, ErrorKindLoneQuantifier)
	r.se(`\b+`, ErrorKindLoneQuantifier)

	t.Run("Braces", func(t *testing.T) {
		r.se(`{1}`, ErrorKindInvalidBracedQuantifier, Span{0, 3})
		r.se(`a|{1,2}`, ErrorKindInvalidBracedQuantifier, Span{2, 7})
		ru.se(`{1}`, ErrorKindLoneQuantifier, Span{0, 3})
		ru.se(`a{`, ErrorKindCouldNotParseEntirePattern)
		ru.se(`a{1`, ErrorKindCouldNotParseEntirePattern)
		ru.se(`a{,1}`, ErrorKindCouldNotParseEntirePattern)

		body := terms(t, r.tree(`a{`))
		assert.DeepEqual(t, body, []Term{sym(0, 'a'), sym(1, '{')})
		body = terms(t, r.tree(`a{,1}`))
		assert.Equal(t, len(body), 5)
		body = terms(t, r.tree(`x{1,a}`))
		assert.Equal(t, len(body), 6)
		r.ok(`{`)
		r.ok(`}`)
		r.ok(`{a}`)
	})

	t.Run("Lookaround", func(t *testing.T) {
		q, ok := term(t, r.tree(`(?=a)*`)).(*Quantifier)
		assert.Assert(t, ok)
		la, ok := q.Body.(*LookAroundAssertion)
		assert.Assert(t, ok)
		assert.Equal(t, la.Kind, LookAroundAssertionKindLookahead)
		r.ok(`(?!a){2}`)
		r.se(`(?<=a)*`, ErrorKindLoneQuantifier, Span{6, 7})
		r.se(`(?<!a)+`, ErrorKindLoneQuantifier)
		ru.se(`(?=a)*`, ErrorKindLoneQuantifier)
		ru.se(`(?!a)?`, ErrorKindLoneQuantifier)
	})
}

func TestAssertions(t *testing.T) {
	r := newRunner(t)

	body := terms(t, r.tree(`^$\b\B`))
	assert.DeepEqual(t, body, []Term{
		&BoundaryAssertion{Span: Span{0, 1}, Kind: BoundaryAssertionKindStart},
		&BoundaryAssertion{Span: Span{1, 2}, Kind: BoundaryAssertionKindEnd},
		&BoundaryAssertion{Span: Span{2, 4}, Kind: BoundaryAssertionKindBoundary},
		&BoundaryAssertion{Span: Span{4, 6}, Kind: BoundaryAssertionKindNegativeBoundary},
	})

	kinds := map[string]LookAroundAssertionKind{
		`(?=a)`:  LookAroundAssertionKindLookahead,
		`(?!a)`:  LookAroundAssertionKindNegativeLookahead,
		`(?<=a)`: LookAroundAssertionKindLookbehind,
		`(?<!a)`: LookAroundAssertionKindNegativeLookbehind,
	}
	for pattern, kind := range kinds {
		for _, rr := range []*runner{&r, r.f(u)} {
			la, ok := term(t, rr.tree(pattern)).(*LookAroundAssertion)
			assert.Assert(t, ok, pattern)
			assert.Equal(t, la.Kind, kind)
			assert.Equal(t, la.Span, Span{0, len(pattern)})
			assert.DeepEqual(t, la.Body.Body[0].Body, []Term{sym(len(pattern)-2, 'a')})
		}
	}

	r.se(`(?=a`, ErrorKindUnterminatedLookaroundAssertion, Span{0, 3})
	r.se(`(?<!a`, ErrorKindUnterminatedLookaroundAssertion, Span{0, 4})
	r.f(u).se(`(?<=`, ErrorKindUnterminatedLookaroundAssertion, Span{0, 4})
	r.ok(`(?=)`)
	r.ok(`(?<=(?!a)b)`)
}

func TestGroups(t *testing.T) {
	r := newRunner(t)
	ru := r.f(u)

	t.Run("Capturing", func(t *testing.T) {
		group, ok := term(t, r.tree(`(a)`)).(*CapturingGroup)
		assert.Assert(t, ok)
		assert.Equal(t, group.Span, Span{0, 3})
		assert.Equal(t, group.Name, "")

		group, ok = term(t, r.tree(`(?<name>a)`)).(*CapturingGroup)
		assert.Assert(t, ok)
		assert.Equal(t, group.Span, Span{0, 10})
		assert.Equal(t, group.Name, "name")
		assert.DeepEqual(t, group.Body.Body[0].Body, []Term{sym(8, 'a')})
	})

	t.Run("Ignore", func(t *testing.T) {
		group, ok := term(t, r.tree(`(?:a)`)).(*IgnoreGroup)
		assert.Assert(t, ok)
		assert.Equal(t, group.Span, Span{0, 5})
		assert.Assert(t, group.Modifiers == nil)
	})

	r.ok(`()`)
	r.ok(`(?:)`)
	r.ok(`((((a))))`)
	r.se(`(`, ErrorKindUnterminatedCapturingGroup, Span{0, 1})
	ru.se(`(a`, ErrorKindUnterminatedCapturingGroup, Span{0, 1})
	r.se(`(?<a>b`, ErrorKindUnterminatedCapturingGroup, Span{0, 5})
	r.se(`(?:a`, ErrorKindUnterminatedIgnoreGroup, Span{0, 3})
	r.se(`(?a)`, ErrorKindMissingCapturingGroupName)
	r.se(`(?)`, ErrorKindMissingCapturingGroupName)
	r.se(`(?<>a)`, ErrorKindMissingCapturingGroupName)
	r.se(`(?<a`, ErrorKindMissingCapturingGroupName)
	ru.se(`(?<1>a)`, ErrorKindMissingCapturingGroupName)
}

func TestModifiers(t *testing.T) {
	r := newRunner(t)

	group := term(t, r.tree(`(?i:a)`)).(*IgnoreGroup)
	assert.DeepEqual(t, group.Modifiers, &Modifiers{Span: Span{2, 3}, Enabling: FlagIgnoreCase})

	group = term(t, r.tree(`(?mi-s:a)`)).(*IgnoreGroup)
	assert.DeepEqual(t, group.Modifiers, &Modifiers{
		Span:      Span{2, 6},
		Enabling:  FlagIgnoreCase | FlagMultiline,
		Disabling: FlagDotAll,
	})

	group = term(t, r.f(u).tree(`(?-ims:a)`)).(*IgnoreGroup)
	assert.DeepEqual(t, group.Modifiers, &Modifiers{
		Span:      Span{2, 6},
		Disabling: FlagIgnoreCase | FlagMultiline | FlagDotAll,
	})

	r.ok(`(?mi-:a)`)
	r.ok(`(?s:)`)
	r.f(v).ok(`(?i:[a])`)
	r.se(`(?-:a)`, ErrorKindInvalidModifiers, Span{2, 3})
	r.se(`(?ii:a)`, ErrorKindInvalidModifiers, Span{2, 4})
	r.se(`(?i-i:a)`, ErrorKindInvalidModifiers, Span{2, 5})
	r.se(`(?m-sm:a)`, ErrorKindInvalidModifiers)
	r.se(`(?i-ss:a)`, ErrorKindInvalidModifiers)
	r.se(`(?i:a`, ErrorKindUnterminatedIgnoreGroup)
	r.se(`(?x:a)`, ErrorKindMissingCapturingGroupName)
	r.se(`(?i)`, ErrorKindMissingCapturingGroupName)
	r.se(`(?-i)`, ErrorKindMissingCapturingGroupName)
}

func TestNamedGroups(t *testing.T) {
	r := newRunner(t)
	ru := r.f(u)

	r.ok(`(?<a>x)|(?<a>y)`)
	r.ok(`((?<a>x)|(?<a>y))`)
	r.ok(`(?:(?<a>x)|(?<a>y))\k<a>`)
	r.ok(`(?:(?:(?<a>x)|(?<a>y))|(?<a>z))`)
	ru.ok(`(?<$>a)(?<_b1>b)(?<ŝ>c)`)
	ru.ok("(?<a\u200db>x)")
	ru.ok(`(?<a\u200db>x)`)

	r.se(`(?<a>x)(?<a>y)`, ErrorKindDuplicatedGroupName, Span{2, 5}, Span{9, 12})
	ru.se(`(?<a>x)(?<a>y)`, ErrorKindDuplicatedGroupName, Span{2, 5}, Span{9, 12})
	r.se(`(?<a>x)|(?<b>y)(?<b>z)`, ErrorKindDuplicatedGroupName)
	r.se(`(?<a>x)((?<a>y))`, ErrorKindDuplicatedGroupName)
	r.se(`((?<a>x)|(?<a>y))(?<a>z)`, ErrorKindDuplicatedGroupName)
	r.se(`(?<a>x)(?:(?<a>y)|z)`, ErrorKindDuplicatedGroupName)

	t.Run("Escapes", func(t *testing.T) {
		for _, rr := range []*runner{&r, ru} {
			group := term(t, rr.tree(`(?<ab>x)`)).(*CapturingGroup)
			assert.Equal(t, group.Name, "ab")
			group = term(t, rr.tree(`(?<\u{62}>x)`)).(*CapturingGroup)
			assert.Equal(t, group.Name, "b")
			group = term(t, rr.tree(`(?<\ud800\udf30>x)`)).(*CapturingGroup)
			assert.Equal(t, group.Name, "\U00010330")
			group = term(t, rr.tree("(?<\U00010330>x)")).(*CapturingGroup)
			assert.Equal(t, group.Name, "\U00010330")
		}
	})

	r.se(`(?<\u{d800}>x)`, ErrorKindInvalidUnicodeEscapeSequence)
	ru.se(`(?<\u{d800}>x)`, ErrorKindInvalidUnicodeEscapeSequence)
	r.se(`(?<1>x)`, ErrorKindMissingCapturingGroupName)
	r.se(`(?<a\x62>x)`, ErrorKindInvalidUnicodeEscapeSequence)
	r.se(`(?<\u{110000}>x)`, ErrorKindInvalidUnicodeEscapeSequence)
	r.se("(?<\U0001F431>x)", ErrorKindInvalidSurrogatePair)
	ru.se("(?<\U0001F431>x)", ErrorKindMissingCapturingGroupName)
}

func TestHelperFunctions(t *testing.T) {
	assert.Equal(t, isHexDigit('0'-1), false)
	assert.Equal(t, isHexDigit('0'), true)
	assert.Equal(t, isHexDigit('9'), true)
	assert.Equal(t, isHexDigit('9'+1), false)
	assert.Equal(t, isHexDigit('a'-1), false)
	assert.Equal(t, isHexDigit('a'), true)
	assert.Equal(t, isHexDigit('f'), true)
	assert.Equal(t, isHexDigit('f'+1), false)
	assert.Equal(t, isHexDigit('A'-1), false)
	assert.Equal(t, isHexDigit('A'), true)
	assert.Equal(t, isHexDigit('F'), true)
	assert.Equal(t, isHexDigit('F'+1), false)
	assert.Equal(t, isHexDigit(eof), false)

	assert.Equal(t, isASCIIWordChar('0'-1), false)
	assert.Equal(t, isASCIIWordChar('0'), true)
	assert.Equal(t, isASCIIWordChar('9'), true)
	assert.Equal(t, isASCIIWordChar('9'+1), false)
	assert.Equal(t, isASCIIWordChar('a'-1), false)
	assert.Equal(t, isASCIIWordChar('a'), true)
	assert.Equal(t, isASCIIWordChar('z'), true)
	assert.Equal(t, isASCIIWordChar('z'+1), false)
	assert.Equal(t, isASCIIWordChar('A'-1), false)
	assert.Equal(t, isASCIIWordChar('A'), true)
	assert.Equal(t, isASCIIWordChar('Z'), true)
	assert.Equal(t, isASCIIWordChar('Z'+1), false)
	assert.Equal(t, isASCIIWordChar('_'-1), false)
	assert.Equal(t, isASCIIWordChar('_'), true)
	assert.Equal(t, isASCIIWordChar('_'+1), false)

	for i, c := range "0123456789abcdef" {
		assert.Equal(t, parseHexDigit(c), rune(i))
	}
	for i, c := range "ABCDEF" {
		assert.Equal(t, parseHexDigit(c), rune(10+i))
	}

	assert.Equal(t, isSyntaxCharacter('|'), true)
	assert.Equal(t, isSyntaxCharacter('/'), false)
	assert.Equal(t, isOctalDigit('7'), true)
	assert.Equal(t, isOctalDigit('8'), false)
	assert.Equal(t, isNonZeroDigit('0'), false)
	assert.Equal(t, isNonZeroDigit('9'), true)
	assert.Equal(t, isLeadSurrogate(0xd83d), true)
	assert.Equal(t, isLeadSurrogate(0xdc31), false)
	assert.Equal(t, isTrailSurrogate(0xdc31), true)
	assert.Equal(t, isTrailSurrogate(0xd83d), false)
	assert.Equal(t, combineSurrogatePair(0xd83d, 0xdc31), rune(0x1f431))
	assert.Equal(t, isValidUnicode(0x10ffff), true)
	assert.Equal(t, isValidUnicode(0x110000), false)

	assert.Equal(t, isIdentifierStartChar('$'), true)
	assert.Equal(t, isIdentifierStartChar('1'), false)
	assert.Equal(t, isIdentifierPartChar('1'), true)
	assert.Equal(t, isIdentifierPartChar(zwj), true)
	assert.Equal(t, isIdentifierStartChar(zwj), false)
	assert.Equal(t, isUnicodeIDStart(0x10330), true)
	assert.Equal(t, isUnicodeIDStart(0x1f431), false)
	assert.Equal(t, isUnicodeIDContinue(0x0301), true)
	assert.Equal(t, isUnicodeIDStart(0x0301), false)
	assert.Equal(t, isUnicodeIDStart(eof), false)

	c, ok := mapCASCIILetter('J')
	assert.Assert(t, ok)
	assert.Equal(t, c, rune('\n'))
	_, ok = mapCASCIILetter('1')
	assert.Assert(t, !ok)
	c, ok = mapControlEscape('v')
	assert.Assert(t, ok)
	assert.Equal(t, c, rune('\v'))
}
