package main

import (
	"fmt"

	"github.com/auvred/ecmaregex"
	"gopkg.in/yaml.v2"
)

var (
	boundaryKinds = [...]string{
		ecmaregex.BoundaryAssertionKindStart:            "start",
		ecmaregex.BoundaryAssertionKindEnd:              "end",
		ecmaregex.BoundaryAssertionKindBoundary:         "boundary",
		ecmaregex.BoundaryAssertionKindNegativeBoundary: "negativeBoundary",
	}
	lookAroundKinds = [...]string{
		ecmaregex.LookAroundAssertionKindLookahead:          "lookahead",
		ecmaregex.LookAroundAssertionKindNegativeLookahead:  "negativeLookahead",
		ecmaregex.LookAroundAssertionKindLookbehind:         "lookbehind",
		ecmaregex.LookAroundAssertionKindNegativeLookbehind: "negativeLookbehind",
	}
	characterKinds = [...]string{
		ecmaregex.CharacterKindSymbol:            "symbol",
		ecmaregex.CharacterKindSingleEscape:      "singleEscape",
		ecmaregex.CharacterKindControlLetter:     "controlLetter",
		ecmaregex.CharacterKindNull:              "null",
		ecmaregex.CharacterKindHexadecimalEscape: "hexadecimalEscape",
		ecmaregex.CharacterKindUnicodeEscape:     "unicodeEscape",
		ecmaregex.CharacterKindOctal1:            "octal1",
		ecmaregex.CharacterKindOctal2:            "octal2",
		ecmaregex.CharacterKindOctal3:            "octal3",
		ecmaregex.CharacterKindIdentifier:        "identifier",
	}
	classEscapeKinds = [...]string{
		ecmaregex.CharacterClassEscapeKindD:         "d",
		ecmaregex.CharacterClassEscapeKindNegativeD: "D",
		ecmaregex.CharacterClassEscapeKindS:         "s",
		ecmaregex.CharacterClassEscapeKindNegativeS: "S",
		ecmaregex.CharacterClassEscapeKindW:         "w",
		ecmaregex.CharacterClassEscapeKindNegativeW: "W",
	}
	classContentsKinds = [...]string{
		ecmaregex.CharacterClassContentsKindUnion:        "union",
		ecmaregex.CharacterClassContentsKindIntersection: "intersection",
		ecmaregex.CharacterClassContentsKindSubtraction:  "subtraction",
	}
)

func node(typ string, span ecmaregex.Span, fields ...yaml.MapItem) yaml.MapSlice {
	return append(yaml.MapSlice{
		{Key: "type", Value: typ},
		{Key: "span", Value: []int{span.Start, span.End}},
	}, fields...)
}

func field(key string, value interface{}) yaml.MapItem {
	return yaml.MapItem{Key: key, Value: value}
}

// dump converts a syntax tree into an ordered YAML document.
func dump(n ecmaregex.Node) yaml.MapSlice {
	switch n := n.(type) {
	case *ecmaregex.Pattern:
		return node("Pattern", n.Span, field("body", dump(n.Body)))
	case *ecmaregex.Disjunction:
		body := make([]yaml.MapSlice, len(n.Body))
		for i, alt := range n.Body {
			body[i] = dump(alt)
		}
		return node("Disjunction", n.Span, field("body", body))
	case *ecmaregex.Alternative:
		body := make([]yaml.MapSlice, len(n.Body))
		for i, term := range n.Body {
			body[i] = dump(term)
		}
		return node("Alternative", n.Span, field("body", body))
	case *ecmaregex.BoundaryAssertion:
		return node("BoundaryAssertion", n.Span, field("kind", boundaryKinds[n.Kind]))
	case *ecmaregex.LookAroundAssertion:
		return node("LookAroundAssertion", n.Span,
			field("kind", lookAroundKinds[n.Kind]),
			field("body", dump(n.Body)),
		)
	case *ecmaregex.Quantifier:
		var max interface{} = n.Max
		if n.Max < 0 {
			max = nil
		}
		return node("Quantifier", n.Span,
			field("min", n.Min),
			field("max", max),
			field("greedy", n.Greedy),
			field("body", dump(n.Body)),
		)
	case *ecmaregex.Character:
		return node("Character", n.Span,
			field("kind", characterKinds[n.Kind]),
			field("value", fmt.Sprintf("U+%04X", n.Value)),
		)
	case *ecmaregex.Dot:
		return node("Dot", n.Span)
	case *ecmaregex.CharacterClassEscape:
		return node("CharacterClassEscape", n.Span, field("kind", classEscapeKinds[n.Kind]))
	case *ecmaregex.UnicodePropertyEscape:
		fields := []yaml.MapItem{
			field("negative", n.Negative),
			field("strings", n.Strings),
			field("name", n.Name),
		}
		if n.Value != "" {
			fields = append(fields, field("value", n.Value))
		}
		return node("UnicodePropertyEscape", n.Span, fields...)
	case *ecmaregex.CharacterClass:
		body := make([]yaml.MapSlice, len(n.Body))
		for i, c := range n.Body {
			body[i] = dump(c)
		}
		return node("CharacterClass", n.Span,
			field("negative", n.Negative),
			field("strings", n.Strings),
			field("kind", classContentsKinds[n.Kind]),
			field("body", body),
		)
	case *ecmaregex.CharacterClassRange:
		return node("CharacterClassRange", n.Span,
			field("min", dump(n.Min)),
			field("max", dump(n.Max)),
		)
	case *ecmaregex.ClassStringDisjunction:
		body := make([]yaml.MapSlice, len(n.Body))
		for i, s := range n.Body {
			body[i] = dump(s)
		}
		return node("ClassStringDisjunction", n.Span,
			field("strings", n.Strings),
			field("body", body),
		)
	case *ecmaregex.ClassString:
		body := make([]yaml.MapSlice, len(n.Body))
		for i, c := range n.Body {
			body[i] = dump(c)
		}
		return node("ClassString", n.Span,
			field("strings", n.Strings),
			field("body", body),
		)
	case *ecmaregex.CapturingGroup:
		fields := []yaml.MapItem{}
		if n.Name != "" {
			fields = append(fields, field("name", n.Name))
		}
		fields = append(fields, field("body", dump(n.Body)))
		return node("CapturingGroup", n.Span, fields...)
	case *ecmaregex.Modifiers:
		return node("Modifiers", n.Span,
			field("enabling", n.Enabling.String()),
			field("disabling", n.Disabling.String()),
		)
	case *ecmaregex.IgnoreGroup:
		fields := []yaml.MapItem{}
		if n.Modifiers != nil {
			fields = append(fields, field("modifiers", dump(n.Modifiers)))
		}
		fields = append(fields, field("body", dump(n.Body)))
		return node("IgnoreGroup", n.Span, fields...)
	case *ecmaregex.IndexedReference:
		return node("IndexedReference", n.Span, field("index", n.Index))
	case *ecmaregex.NamedReference:
		return node("NamedReference", n.Span, field("name", n.Name))
	}
	panic(fmt.Sprintf("regexast: unexpected node type %T", n))
}
