package ecmaregex

import "fmt"

// Inspect traverses a syntax tree in depth-first order, like go/ast.Inspect.
// It starts by calling f(node); node must not be nil. If f returns true,
// Inspect invokes f recursively for each of the non-nil children of node,
// followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	if !f(node) {
		return
	}

	switch n := node.(type) {
	case *Pattern:
		Inspect(n.Body, f)
	case *Disjunction:
		for _, alt := range n.Body {
			Inspect(alt, f)
		}
	case *Alternative:
		for _, term := range n.Body {
			Inspect(term, f)
		}
	case *LookAroundAssertion:
		Inspect(n.Body, f)
	case *Quantifier:
		Inspect(n.Body, f)
	case *CharacterClass:
		for _, c := range n.Body {
			Inspect(c, f)
		}
	case *CharacterClassRange:
		Inspect(n.Min, f)
		Inspect(n.Max, f)
	case *ClassStringDisjunction:
		for _, s := range n.Body {
			Inspect(s, f)
		}
	case *ClassString:
		for _, c := range n.Body {
			Inspect(c, f)
		}
	case *CapturingGroup:
		Inspect(n.Body, f)
	case *IgnoreGroup:
		if n.Modifiers != nil {
			Inspect(n.Modifiers, f)
		}
		Inspect(n.Body, f)
	case *BoundaryAssertion, *Character, *Dot, *CharacterClassEscape,
		*UnicodePropertyEscape, *Modifiers, *IndexedReference, *NamedReference:
		// leaves
	default:
		panic(fmt.Sprintf("ecmaregex.Inspect: unexpected node type %T", n))
	}

	f(nil)
}
