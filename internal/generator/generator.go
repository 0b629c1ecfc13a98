package generator

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Source yields floats in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a non-cryptographic source seeded from the runtime.
func NewSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generator samples passwords from the alphabet described by Settings.
type Generator struct {
	src Source
}

func New(src Source) *Generator {
	if src == nil {
		src = NewSource()
	}
	return &Generator{src: src}
}

// Generate returns exactly s.Length characters (after clamping), each drawn
// independently from Alphabet(s).
func (g *Generator) Generate(s Settings) string {
	s = s.Clamped()
	alphabet := Alphabet(s)

	var b strings.Builder
	b.Grow(s.Length)
	for i := 0; i < s.Length; i++ {
		b.WriteByte(alphabet[g.index(len(alphabet))])
	}
	return b.String()
}

// index maps one sample onto [0, n). The floor keeps fractional values out and
// the clamp keeps a misbehaving source that returns 1.0 in range.
func (g *Generator) index(n int) int {
	f := g.src.Float64()
	if f < 0 || math.IsNaN(f) {
		f = 0
	}
	i := int(math.Floor(f * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}
