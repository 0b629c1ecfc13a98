package generator

const (
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()+-_{}[]~`"

	MinLength     = 6
	MaxLength     = 100
	DefaultLength = 8
)

// Settings are the user-controlled parameters of a generation.
type Settings struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// DefaultSettings returns 8 letters-only characters.
func DefaultSettings() Settings {
	return Settings{Length: DefaultLength}
}

// Clamped returns s with Length forced into [MinLength, MaxLength].
func (s Settings) Clamped() Settings {
	s.Length = ClampLength(s.Length)
	return s
}

func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Alphabet returns the characters eligible for sampling. Letters are always
// present so the result is never empty.
func Alphabet(s Settings) string {
	out := Letters
	if s.IncludeDigits {
		out += Digits
	}
	if s.IncludeSymbols {
		out += Symbols
	}
	return out
}
