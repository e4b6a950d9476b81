package testutil

import "math/rand"

// RandomBytes returns n bytes drawn from alphabet using rng.
// An empty alphabet draws from the full byte range.
func RandomBytes(rng *rand.Rand, n int, alphabet string) []byte {
	out := make([]byte, n)
	for i := range out {
		if alphabet == "" {
			out[i] = byte(rng.Intn(256))
			continue
		}
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return out
}
