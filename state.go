package ecmaregex

import "math"

// state holds the facts about the whole pattern that are collected before
// the grammar descent. It is read-only once initializeWithParsing returns.
type state struct {
	unicodeMode     bool
	unicodeSetsMode bool
	// Whether \k<name> is parsed as a named reference.
	namedCaptureGroups bool

	numOfCapturingGroups      int
	numOfNamedCapturingGroups int
	foundGroupNames           map[string]struct{}
}

func newState(flags Flag) state {
	return state{
		unicodeMode:     flags&flagEitherUnicode != 0,
		unicodeSetsMode: flags&FlagUnicodeSets != 0,
		foundGroupNames: map[string]struct{}{},
	}
}

// groupNameScope tracks the group names of one parenthesized disjunction.
// cur holds names of the alternative being scanned, all holds names of the
// alternatives already finished.
type groupNameScope struct {
	cur map[string]Span
	all map[string]Span
}

func newGroupNameScope() groupNameScope {
	return groupNameScope{cur: map[string]Span{}, all: map[string]Span{}}
}

// initializeWithParsing scans the entire pattern, counting capturing groups
// and collecting their names. The reader is rewound afterwards.
//
// The same name may be used by groups in different alternatives, like
// (?<a>x)|(?<a>y). It is an error when both groups can participate in the
// same match.
func (p *Parser) initializeWithParsing() error {
	checkpoint := p.r.checkpoint()
	defer p.r.rewind(checkpoint)

	scopes := []groupNameScope{newGroupNameScope()}
	var duplicate *SyntaxError
	classDepth := 0

	for !p.r.atEnd() {
		c := p.r.peek()
		switch {
		case c == '\\':
			p.r.advance()
			p.r.advance()
			continue
		case classDepth > 0:
			if c == ']' {
				classDepth--
			} else if c == '[' && p.state.unicodeSetsMode {
				classDepth++
			}
		case c == '[':
			classDepth++
		case c == '(':
			p.r.advance()
			scopes = append(scopes, newGroupNameScope())
			if !p.r.eat('?') {
				p.state.numOfCapturingGroups++
				continue
			}
			if p.r.peek() != '<' || p.r.peek2() == '=' || p.r.peek2() == '!' {
				continue
			}
			p.state.numOfCapturingGroups++
			p.state.numOfNamedCapturingGroups++
			nameStart := p.r.offset()
			name, ok, err := p.consumeGroupName()
			if err != nil || !ok {
				// reported by the grammar descent
				continue
			}
			span := p.spans.create(nameStart, p.r.offset())
			p.state.foundGroupNames[name] = struct{}{}
			if duplicate == nil {
				for _, s := range scopes[:len(scopes)-1] {
					if prev, ok := s.cur[name]; ok {
						duplicate = newSyntaxError(
							ErrorKindDuplicatedGroupName,
							"duplicated capturing group name",
							prev, span,
						)
						break
					}
				}
			}
			scopes[len(scopes)-2].cur[name] = span
			continue
		case c == ')':
			if len(scopes) > 1 {
				top := scopes[len(scopes)-1]
				scopes = scopes[:len(scopes)-1]
				parent := scopes[len(scopes)-1].cur
				for name, span := range top.all {
					parent[name] = span
				}
				for name, span := range top.cur {
					parent[name] = span
				}
			}
		case c == '|':
			top := &scopes[len(scopes)-1]
			for name, span := range top.cur {
				top.all[name] = span
			}
			top.cur = map[string]Span{}
		}
		p.r.advance()
	}

	if uint64(p.state.numOfCapturingGroups) >= math.MaxUint32 {
		return newSyntaxError(
			ErrorKindTooManyCapturingGroups,
			"too many capturing groups",
			p.spans.create(0, p.r.end),
		)
	}
	if duplicate != nil {
		return duplicate
	}
	p.state.namedCaptureGroups = p.state.unicodeMode || p.state.numOfNamedCapturingGroups > 0
	return nil
}
