// Package codepoint generates random sequences of Unicode scalar values.
package codepoint

import (
	mathrand "math/rand"
	"strconv"
	"time"
)

const (
	// Max is the largest Unicode codepoint.
	Max = 0x10FFFF

	SurrogateMin = 0xD800
	SurrogateMax = 0xDFFF
)

// IsSurrogate reports whether r is reserved for UTF-16 surrogate pairs.
func IsSurrogate(r rune) bool {
	return SurrogateMin <= r && r <= SurrogateMax
}

// Valid reports whether r is a Unicode scalar value.
func Valid(r rune) bool {
	return 0 <= r && r <= Max && !IsSurrogate(r)
}

// Text is an ordered sequence of scalar values.
type Text []rune

func (t Text) String() string {
	return string(t)
}

// Listing renders t as decimal codepoint values, one per line. Every line,
// including the last, ends in \n.
func (t Text) Listing() []byte {
	b := make([]byte, 0, len(t)*8)
	for _, r := range t {
		b = strconv.AppendInt(b, int64(r), 10)
		b = append(b, '\n')
	}
	return b
}

type Generator struct {
	rand *mathrand.Rand
}

func NewGenerator(src mathrand.Source) *Generator {
	return &Generator{
		rand: mathrand.New(src),
	}
}

// NewSeededGenerator returns a Generator seeded with seed, or with the clock
// when seed is 0.
func NewSeededGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(mathrand.NewSource(seed))
}

// Rune draws uniformly from [0, Max] and redraws while the draw lands in the
// surrogate range.
func (g *Generator) Rune() rune {
	for {
		r := rune(g.rand.Intn(Max + 1))
		if !IsSurrogate(r) {
			return r
		}
	}
}

// Text returns n runes in draw order.
func (g *Generator) Text(n int) Text {
	if n <= 0 {
		return Text{}
	}
	t := make(Text, n)
	for i := range t {
		t[i] = g.Rune()
	}
	return t
}
