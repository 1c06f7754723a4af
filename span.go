package ecmaregex

// spanFactory maps reader offsets into the coordinate space of the caller.
type spanFactory struct {
	offset int
}

func (f spanFactory) create(start, end int) Span {
	return Span{Start: start + f.offset, End: end + f.offset}
}
