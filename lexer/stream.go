package lexer

// pattern is a regex-style character-class predicate used by peek/match.
type pattern func(byte) bool

// charStream holds the input and the lexer's position within it. It
// tracks, separately from the read cursor, how many bytes have been
// consumed since the last emit() — the "length" counter of spec.md §4.1 —
// so emit() can slice out exactly the token just matched.
type charStream struct {
	src    string
	index  int // next byte to read
	length int // bytes consumed since the last emit()
	line   int
	column int
}

func newCharStream(src string) *charStream {
	return &charStream{src: src, index: 0, length: 0, line: 1, column: 1}
}

func (c *charStream) atEnd() bool {
	return c.index >= len(c.src)
}

// byteAt returns the byte at offset positions ahead of the read cursor, or
// 0 past the end of input.
func (c *charStream) byteAt(offset int) byte {
	i := c.index + offset
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// peek reports whether the next len(patterns) bytes each match their
// corresponding pattern, without advancing.
func (c *charStream) peek(patterns ...pattern) bool {
	for i, p := range patterns {
		b := c.byteAt(i)
		if b == 0 || !p(b) {
			return false
		}
	}
	return true
}

// match behaves like peek but advances past the matched bytes on success.
func (c *charStream) match(patterns ...pattern) bool {
	if !c.peek(patterns...) {
		return false
	}
	for range patterns {
		c.advance()
	}
	return true
}

// advance consumes exactly one byte, updating line/column bookkeeping.
func (c *charStream) advance() byte {
	b := c.byteAt(0)
	c.index++
	c.length++
	if b == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return b
}

// emit returns the substring consumed since the last emit() (or the start
// of input) and resets the length counter.
func (c *charStream) emit() string {
	s := c.src[c.index-c.length : c.index]
	c.length = 0
	return s
}

// discard resets the length counter without returning the consumed text,
// for whitespace and comments.
func (c *charStream) discard() {
	c.length = 0
}
