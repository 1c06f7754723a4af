package ecmaregex

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
)

const (
	u = FlagUnicode
	v = FlagUnicodeSets
)

type runner struct {
	t    *testing.T
	flag Flag
}

func newRunner(t *testing.T) runner {
	return runner{t: t}
}

func (r runner) f(f Flag) *runner {
	r.flag |= f
	return &r
}

func u16e(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Trees of the UTF-8 and UTF-16 encodings of a pattern differ only in spans.
var ignoreSpans = cmp.Options{cmpopts.IgnoreTypes(Span{}), cmpopts.EquateEmpty()}

// parse parses the pattern as UTF-8 and as UTF-16, checks the span
// invariants of the tree and that both encodings agree.
func (r *runner) parse(t *testing.T, pattern string) *Pattern {
	t.Helper()
	t.Logf("/%s/%s", pattern, r.flag)

	tree, err := Parse(pattern, Options{Flags: r.flag})
	assert.NilError(t, err)
	checkSpans(t, pattern, tree, 0)

	tree16, err := ParseUTF16(u16e(pattern), Options{Flags: r.flag})
	assert.NilError(t, err)
	assert.DeepEqual(t, tree, tree16, ignoreSpans)
	return tree
}

// tree parses a valid pattern on the runner's test.
func (r *runner) tree(pattern string) *Pattern {
	r.t.Helper()
	return r.parse(r.t, pattern)
}

// ok checks that the pattern is valid.
func (r *runner) ok(pattern string) {
	r.t.Run("", func(t *testing.T) {
		t.Parallel()
		r.parse(t, pattern)
	})
}

// se checks that the pattern fails with a syntax error of the given kind.
// If labels are given, they are compared with the labels of the error
// reported for the UTF-8 encoding.
func (r *runner) se(pattern string, kind ErrorKind, labels ...Span) {
	r.t.Run("", func(t *testing.T) {
		t.Parallel()
		t.Logf("/%s/%s", pattern, r.flag)

		_, err := Parse(pattern, Options{Flags: r.flag})
		syntaxErr, ok := err.(*SyntaxError)
		assert.Assert(t, ok, "expected *SyntaxError, got %v", err)
		assert.Equal(t, syntaxErr.Kind, kind, syntaxErr.Message)
		assert.Assert(t, len(syntaxErr.Labels) > 0)
		if len(labels) > 0 {
			assert.DeepEqual(t, syntaxErr.Labels, labels)
		}

		_, err = ParseUTF16(u16e(pattern), Options{Flags: r.flag})
		syntaxErr, ok = err.(*SyntaxError)
		assert.Assert(t, ok, "expected *SyntaxError, got %v", err)
		assert.Equal(t, syntaxErr.Kind, kind, "utf16: "+syntaxErr.Message)
	})
}

func isLeaf(n Node) bool {
	switch n := n.(type) {
	case *Alternative:
		return len(n.Body) == 0
	case *ClassString:
		return len(n.Body) == 0
	case *CharacterClass:
		return len(n.Body) == 0
	case *BoundaryAssertion, *Character, *Dot, *CharacterClassEscape,
		*UnicodePropertyEscape, *Modifiers, *IndexedReference, *NamedReference:
		return true
	}
	return false
}

// checkSpans verifies that every span is well formed and nested in its
// parent, that leaves do not overlap and appear in source order, and that
// literal characters cover their own source text.
func checkSpans(t *testing.T, source string, tree *Pattern, offset int) {
	t.Helper()
	if source != "" {
		assert.Equal(t, tree.Span, Span{offset, offset + len(source)})
	}

	var parents []Span
	prevLeafEnd := tree.Span.Start
	Inspect(tree, func(n Node) bool {
		if n == nil {
			parents = parents[:len(parents)-1]
			return false
		}
		span := n.NodeSpan()
		assert.Assert(t, span.Start <= span.End, "%T %v", n, span)
		if len(parents) > 0 {
			parent := parents[len(parents)-1]
			assert.Assert(t, parent.Start <= span.Start && span.End <= parent.End,
				"%T %v is not inside of %v", n, span, parent)
		}
		if isLeaf(n) {
			assert.Assert(t, prevLeafEnd <= span.Start, "%T %v overlaps previous leaf", n, span)
			prevLeafEnd = span.End
		}
		if c, ok := n.(*Character); ok && c.Kind == CharacterKindSymbol && source != "" && utf8.ValidRune(c.Value) {
			if text := source[span.Start-offset : span.End-offset]; text != `\` {
				assert.Equal(t, text, string(c.Value))
			}
		}
		parents = append(parents, span)
		return true
	})
	assert.Equal(t, len(parents), 0)
}

// terms returns the terms of a pattern with a single alternative.
func terms(t *testing.T, p *Pattern) []Term {
	t.Helper()
	assert.Equal(t, len(p.Body.Body), 1)
	return p.Body.Body[0].Body
}

// term returns the only term of a pattern.
func term(t *testing.T, p *Pattern) Term {
	t.Helper()
	body := terms(t, p)
	assert.Equal(t, len(body), 1)
	return body[0]
}

func char(start, end int, kind CharacterKind, value rune) *Character {
	return &Character{Span: Span{start, end}, Kind: kind, Value: value}
}

func sym(start int, value rune) *Character {
	return char(start, start+1, CharacterKindSymbol, value)
}
