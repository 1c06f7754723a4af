package ecmaregex

import (
	"fmt"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestInspect(t *testing.T) {
	p := MustParse(`^(?<x>a|[b-c])(?i:\k<x>)+\1(?=\d)$`, Options{Flags: FlagUnicode})

	var sb strings.Builder
	depth := 0
	Inspect(p, func(n Node) bool {
		if n == nil {
			depth--
			return false
		}
		fmt.Fprintf(&sb, "%s%T\n", strings.Repeat(" ", depth), n)
		depth++
		return true
	})
	assert.Equal(t, depth, 0)
	assert.Equal(t, sb.String(), `*ecmaregex.Pattern
 *ecmaregex.Disjunction
  *ecmaregex.Alternative
   *ecmaregex.BoundaryAssertion
   *ecmaregex.CapturingGroup
    *ecmaregex.Disjunction
     *ecmaregex.Alternative
      *ecmaregex.Character
     *ecmaregex.Alternative
      *ecmaregex.CharacterClass
       *ecmaregex.CharacterClassRange
        *ecmaregex.Character
        *ecmaregex.Character
   *ecmaregex.Quantifier
    *ecmaregex.IgnoreGroup
     *ecmaregex.Modifiers
     *ecmaregex.Disjunction
      *ecmaregex.Alternative
       *ecmaregex.NamedReference
   *ecmaregex.IndexedReference
   *ecmaregex.LookAroundAssertion
    *ecmaregex.Disjunction
     *ecmaregex.Alternative
      *ecmaregex.CharacterClassEscape
   *ecmaregex.BoundaryAssertion
`)

	t.Run("Prune", func(t *testing.T) {
		var characters int
		Inspect(p, func(n Node) bool {
			switch n.(type) {
			case *Character:
				characters++
			case *CharacterClass:
				return false
			}
			return true
		})
		assert.Equal(t, characters, 1)
	})

	t.Run("ClassSets", func(t *testing.T) {
		p := MustParse(`[[\q{ab|c}\p{L}[^x]]--\w]`, Options{Flags: FlagUnicodeSets})
		var count int
		Inspect(p, func(n Node) bool {
			switch n.(type) {
			case *ClassStringDisjunction, *ClassString, *UnicodePropertyEscape, *CharacterClassEscape:
				count++
			}
			return true
		})
		assert.Equal(t, count, 5)
	})
}
