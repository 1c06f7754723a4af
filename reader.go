package ecmaregex

import (
	"unicode/utf16"
	"unicode/utf8"
)

// eof is returned by peek once the reader reached the end of the pattern.
const eof rune = -1

type unit struct {
	value  rune
	offset int
}

// reader is a cursor over the pattern. In Unicode mode a unit is a code
// point, otherwise a unit is a UTF-16 code unit.
type reader struct {
	units []unit
	// offset right after the last unit
	end   int
	index int
}

func newReader(source string, unicodeMode bool) *reader {
	r := &reader{
		units: make([]unit, 0, len(source)),
		end:   len(source),
	}
	for i := 0; i < len(source); {
		c, size := utf8.DecodeRuneInString(source[i:])
		if !unicodeMode && c > 0xffff {
			lead, trail := utf16.EncodeRune(c)
			r.units = append(r.units, unit{lead, i}, unit{trail, i + 2})
		} else {
			r.units = append(r.units, unit{c, i})
		}
		i += size
	}
	return r
}

func newReaderUTF16(source []uint16, unicodeMode bool) *reader {
	r := &reader{
		units: make([]unit, 0, len(source)),
		end:   len(source),
	}
	for i := 0; i < len(source); i++ {
		c := rune(source[i])
		if unicodeMode && isLeadSurrogate(c) && i+1 < len(source) && isTrailSurrogate(rune(source[i+1])) {
			r.units = append(r.units, unit{combineSurrogatePair(c, rune(source[i+1])), i})
			i++
			continue
		}
		r.units = append(r.units, unit{c, i})
	}
	return r
}

func (r *reader) atEnd() bool {
	return r.index >= len(r.units)
}

// offset returns the source offset of the cursor.
func (r *reader) offset() int {
	if r.index < len(r.units) {
		return r.units[r.index].offset
	}
	return r.end
}

func (r *reader) checkpoint() int {
	return r.index
}

func (r *reader) rewind(checkpoint int) {
	r.index = checkpoint
}

func (r *reader) peekAt(n int) rune {
	if i := r.index + n; i < len(r.units) {
		return r.units[i].value
	}
	return eof
}

func (r *reader) peek() rune {
	return r.peekAt(0)
}

func (r *reader) peek2() rune {
	return r.peekAt(1)
}

func (r *reader) advance() {
	if r.index < len(r.units) {
		r.index++
	}
}

func (r *reader) eat(c rune) bool {
	if r.peek() == c {
		r.advance()
		return true
	}
	return false
}

func (r *reader) eat2(c1, c2 rune) bool {
	if r.peek() == c1 && r.peek2() == c2 {
		r.index += 2
		return true
	}
	return false
}

func (r *reader) eat3(c1, c2, c3 rune) bool {
	if r.peek() == c1 && r.peek2() == c2 && r.peekAt(2) == c3 {
		r.index += 3
		return true
	}
	return false
}

func (r *reader) eat4(c1, c2, c3, c4 rune) bool {
	if r.peek() == c1 && r.peek2() == c2 && r.peekAt(2) == c3 && r.peekAt(3) == c4 {
		r.index += 4
		return true
	}
	return false
}
