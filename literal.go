package ecmaregex

import "unicode/utf8"

// Literal is a RegExp literal split into its pattern and flags.
type Literal struct {
	Span      Span
	Pattern   *Pattern
	Flags     Flag
	FlagsSpan Span
}

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == 0x2028 || c == 0x2029
}

// ParseLiteral parses a RegExp literal like /ab+c/gi. The literal must span
// the whole source. offset is the position of the opening slash within the
// enclosing file and is used for every reported span.
func ParseLiteral(source string, offset int) (*Literal, error) {
	spans := spanFactory{offset: offset}
	if len(source) == 0 || source[0] != '/' {
		return nil, newSyntaxError(
			ErrorKindUnterminatedLiteral,
			"regular expression literal must start with /",
			spans.create(0, min(len(source), 1)),
		)
	}

	bodyEnd := -1
	inClass := false
Scan:
	for i := 1; i < len(source); {
		c, size := utf8.DecodeRuneInString(source[i:])
		switch {
		case isLineTerminator(c):
			break Scan
		case c == '\\':
			i += size
			if i < len(source) {
				c, size = utf8.DecodeRuneInString(source[i:])
				if isLineTerminator(c) {
					break Scan
				}
			}
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			bodyEnd = i
			break Scan
		}
		i += size
	}
	if bodyEnd <= 1 {
		return nil, newSyntaxError(
			ErrorKindUnterminatedLiteral,
			"unterminated regular expression literal",
			spans.create(0, len(source)),
		)
	}

	flags, err := parseFlags(source[bodyEnd+1:], spans, bodyEnd+1)
	if err != nil {
		return nil, err
	}

	pattern, err := Parse(source[1:bodyEnd], Options{Flags: flags, SpanOffset: offset + 1})
	if err != nil {
		return nil, err
	}
	return &Literal{
		Span:      spans.create(0, len(source)),
		Pattern:   pattern,
		Flags:     flags,
		FlagsSpan: spans.create(bodyEnd+1, len(source)),
	}, nil
}

// ParseFlags parses the flags of a RegExp literal, e.g. "gimsuy".
func ParseFlags(str string) (Flag, error) {
	return parseFlags(str, spanFactory{}, 0)
}

func parseFlags(str string, spans spanFactory, start int) (Flag, error) {
	var flags Flag
	for i := 0; i < len(str); {
		char, size := utf8.DecodeRuneInString(str[i:])
		span := spans.create(start+i, start+i+size)
		i += size
		f, ok := flagFromLetter(char)
		if !ok {
			return 0, newSyntaxError(ErrorKindUnknownFlag, "unknown regular expression flag", span)
		}
		if flags&f != 0 {
			return 0, newSyntaxError(ErrorKindDuplicatedFlag, "duplicated regular expression flag", span)
		}
		flags |= f
		if flags&flagEitherUnicode == flagEitherUnicode {
			return 0, newSyntaxError(
				ErrorKindInvalidUnicodeFlags,
				"the u and v flags cannot be used together",
				span,
			)
		}
	}
	return flags, nil
}
