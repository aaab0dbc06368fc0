package random

import "math/rand/v2"

// Source is the process-wide pseudo random source.
type Source struct{}

func (Source) IntN(n int) int {
	return rand.IntN(n)
}
